package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add      func(AddArgs) (Result, error)
	Open     func(OpenArgs) (Result, error)
	Delete   func(DeleteArgs) (Result, error)
	Theme    func(ThemeArgs) (Result, error)
	Export   func(ExportArgs) (Result, error)
	Progress func() (Result, error)
	Help     func() (Result, error)
	Quit     func() (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, missing("add")
		}
		return handlers.Add(*cmd.Add)
	case TypeOpen:
		if handlers.Open == nil {
			return Result{}, missing("open")
		}
		return handlers.Open(*cmd.Open)
	case TypeDelete:
		if handlers.Delete == nil {
			return Result{}, missing("delete")
		}
		return handlers.Delete(*cmd.Delete)
	case TypeTheme:
		if handlers.Theme == nil {
			return Result{}, missing("theme")
		}
		return handlers.Theme(*cmd.Theme)
	case TypeExport:
		if handlers.Export == nil {
			return Result{}, missing("export")
		}
		return handlers.Export(*cmd.Export)
	case TypeProgress:
		if handlers.Progress == nil {
			return Result{}, missing("progress")
		}
		return handlers.Progress()
	case TypeHelp:
		if handlers.Help == nil {
			return Result{}, missing("help")
		}
		return handlers.Help()
	case TypeQuit:
		if handlers.Quit == nil {
			return Result{}, missing("quit")
		}
		return handlers.Quit()
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}

func missing(name string) error {
	return &CommandError{Code: ErrCodeHandlerMissing, Message: name + " handler not configured"}
}
