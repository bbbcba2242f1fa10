package messages

// Message ids. Titles carry a kind segment (err/warn/note) and a stable number;
// description labels are plain names.
const (
	CmdErrDuplicatedOptionName        = "cmd.err.1943"
	CmdErrNoMatchingSubcmdName        = "cmd.err.3485"
	CmdErrInternalLoadFailure         = "cmd.err.6389"
	CmdErrInvalidLogLimit             = "cmd.err.7095"
	CmdErrInvalidLanguage             = "cmd.err.8210"
	CmdErrOptionValueBeforeOptionName = "cmd.err.9534"
	CmdNoteDetails                    = "cmd.note.5720"

	CmdCause       = "cmd.cause"
	CmdOptionName  = "cmd.option_name"
	CmdOptionValue = "cmd.option_value"
	CmdSubcmdName  = "cmd.subcmd_name"
)

const (
	ConsoleErrUnexpected        = "console.err.0001"
	ConsoleNoteLogLimitExceeded = "console.note.4768"

	ConsoleCause    = "console.cause"
	ConsoleErrorID  = "console.error_id"
	ConsoleLogLimit = "console.log_limit"
)

const (
	FileErrPathNotDirectory = "file.err.0077"
	FileErrFileOpen         = "file.err.0117"
	FileErrCurrentDirRead   = "file.err.1069"
	FileErrPathNotFile      = "file.err.2160"
	FileErrInvalidPath      = "file.err.2711"
	FileErrFileRead         = "file.err.3995"
	FileErrFileWrite        = "file.err.4402"
	FileErrDirRead          = "file.err.5978"
	FileErrMetadataRead     = "file.err.6642"
	FileErrPathNotExists    = "file.err.8531"
	FileErrEnvVarRead       = "file.err.9798"

	FileDirPath    = "file.dir_path"
	FileEnvVarName = "file.env_var_name"
	FileFilePath   = "file.file_path"
	FilePath       = "file.path"
)

const (
	LangpackWarnNoSeparator  = "langpack.warn.3310"
	LangpackWarnEmptyKey     = "langpack.warn.3311"
	LangpackWarnDuplicateKey = "langpack.warn.3312"
	LangpackNoteChecked      = "langpack.note.3320"

	LangpackEntries = "langpack.entries"
	LangpackFile    = "langpack.file"
	LangpackKey     = "langpack.key"
	LangpackLine    = "langpack.line"
)

const (
	DemoNoteHello = "demo.note.0001"
	DemoNoteEcho  = "demo.note.0002"
	DemoErrFailed = "demo.err.0003"
	DemoHint      = "demo.hint"
)

// Ref returns the placeholder form of a message id: {^id}.
func Ref(id string) string {
	return "{^" + id + "}"
}

// Field renders a labelled description line: "{^label}: value".
func Field(label, value string) string {
	return Ref(label) + ": " + value
}
