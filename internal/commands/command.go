package commands

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeAdd      Type = "add"
	TypeOpen     Type = "open"
	TypeDelete   Type = "delete"
	TypeTheme    Type = "theme"
	TypeExport   Type = "export"
	TypeProgress Type = "progress"
	TypeHelp     Type = "help"
	TypeQuit     Type = "quit"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Word string
}

type OpenArgs struct {
	Word string
}

type DeleteArgs struct {
	Word string
}

type ThemeArgs struct {
	Theme string
}

type ExportArgs struct {
	Word string
	Path string
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Open   *OpenArgs
	Delete *DeleteArgs
	Theme  *ThemeArgs
	Export *ExportArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseWordArg(TypeAdd, input, args)
	case TypeOpen:
		return parseWordArg(TypeOpen, input, args)
	case TypeDelete:
		return parseWordArg(TypeDelete, input, args)
	case TypeTheme:
		return parseTheme(input, args)
	case TypeExport:
		return parseExport(input, args)
	case TypeProgress:
		return Command{Type: TypeProgress, Raw: input}, nil
	case TypeHelp:
		return Command{Type: TypeHelp, Raw: input}, nil
	case TypeQuit:
		return Command{Type: TypeQuit, Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

// parseWordArg handles the commands whose single argument is a word; words
// may contain spaces, so all remaining tokens are joined back together.
func parseWordArg(typ Type, raw string, args []string) (Command, error) {
	word := strings.TrimSpace(strings.Join(args, " "))
	if word == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a word", typ)}
	}
	cmd := Command{Type: typ, Raw: raw}
	switch typ {
	case TypeAdd:
		cmd.Add = &AddArgs{Word: word}
	case TypeOpen:
		cmd.Open = &OpenArgs{Word: word}
	case TypeDelete:
		cmd.Delete = &DeleteArgs{Word: word}
	}
	return cmd, nil
}

func parseTheme(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "theme requires light or dark"}
	}
	theme := strings.ToLower(args[0])
	if theme != "light" && theme != "dark" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown theme: %s", args[0])}
	}
	return Command{Type: TypeTheme, Raw: raw, Theme: &ThemeArgs{Theme: theme}}, nil
}

// parseExport takes "export <word...> <path>": the last token is the target
// file, everything before it is the word.
func parseExport(raw string, args []string) (Command, error) {
	if len(args) < 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "export requires a word and a target path"}
	}
	path := args[len(args)-1]
	word := strings.TrimSpace(strings.Join(args[:len(args)-1], " "))
	if word == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "export requires a word"}
	}
	return Command{Type: TypeExport, Raw: raw, Export: &ExportArgs{Word: word, Path: path}}, nil
}
