package fileman

import (
	"errors"
	"fmt"

	"clikit/internal/diag"
	"clikit/internal/messages"
)

// ErrorKind classifies file manager failures.
type ErrorKind uint8

const (
	CurrentDirReadFailure ErrorKind = iota + 1
	DirReadFailure
	FileOpenFailure
	FileReadFailure
	FileWriteFailure
	EnvVarReadFailure
	InvalidPath
	MetadataReadFailure
	PathNotDirectory
	PathNotExists
	PathNotFile
)

func (k ErrorKind) String() string {
	switch k {
	case CurrentDirReadFailure:
		return "current directory read failure"
	case DirReadFailure:
		return "directory read failure"
	case FileOpenFailure:
		return "file open failure"
	case FileReadFailure:
		return "file read failure"
	case FileWriteFailure:
		return "file write failure"
	case EnvVarReadFailure:
		return "environment variable read failure"
	case InvalidPath:
		return "invalid path"
	case MetadataReadFailure:
		return "metadata read failure"
	case PathNotDirectory:
		return "path is not a directory"
	case PathNotExists:
		return "path does not exist"
	case PathNotFile:
		return "path is not a file"
	}
	return "unknown file error"
}

// Error is a file manager failure. Path holds the path, or the variable name
// for EnvVarReadFailure. Err is the underlying cause, if any.
type Error struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Path)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// IsKind reports whether err is a file manager error of kind k.
func IsKind(err error, k ErrorKind) bool {
	var fe *Error
	return errors.As(err, &fe) && fe.Kind == k
}

type errorText struct {
	title string
	label string
}

var errorTexts = map[ErrorKind]errorText{
	CurrentDirReadFailure: {messages.FileErrCurrentDirRead, ""},
	DirReadFailure:        {messages.FileErrDirRead, messages.FileDirPath},
	FileOpenFailure:       {messages.FileErrFileOpen, messages.FileFilePath},
	FileReadFailure:       {messages.FileErrFileRead, messages.FileFilePath},
	FileWriteFailure:      {messages.FileErrFileWrite, messages.FileFilePath},
	EnvVarReadFailure:     {messages.FileErrEnvVarRead, messages.FileEnvVarName},
	InvalidPath:           {messages.FileErrInvalidPath, messages.FilePath},
	MetadataReadFailure:   {messages.FileErrMetadataRead, messages.FilePath},
	PathNotDirectory:      {messages.FileErrPathNotDirectory, messages.FilePath},
	PathNotExists:         {messages.FileErrPathNotExists, messages.FilePath},
	PathNotFile:           {messages.FileErrPathNotFile, messages.FilePath},
}

// Diagnostic maps the error to its log entry. The underlying cause, when
// present, is an Optional line.
func (e *Error) Diagnostic() diag.Log {
	text, ok := errorTexts[e.Kind]
	if !ok {
		text = errorText{messages.ConsoleErrUnexpected, messages.FilePath}
	}
	log := diag.Error(messages.Ref(text.title))
	if text.label != "" {
		log = log.With(messages.Field(text.label, e.Path))
	}
	if e.Err != nil {
		log = log.WithOptional(messages.Field(messages.ConsoleCause, e.Err.Error()))
	}
	return log.WithOptional(messages.Field(messages.ConsoleErrorID, text.title))
}
