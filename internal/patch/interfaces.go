package patch

// FilePicker is the user file-selection capability: native dialogs in
// the GUI, flags in the headless CLI. Implementations return ("", nil)
// when the user cancels; err is reserved for dialog failures.
type FilePicker interface {
	// ChooseOpenPath asks the user for an existing file to open
	ChooseOpenPath(title string, extensions []string) (string, error)

	// ChooseSavePath asks the user where to save a file
	ChooseSavePath(title, suggestedName string, extensions []string) (string, error)
}

// ToolProvider installs the external patcher on first use and returns
// its local path
type ToolProvider interface {
	EnsureTool() (string, error)
}
