package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add      func(AddArgs) (Result, error)
	Progress func(ProgressArgs) (Result, error)
	Duration func(DurationArgs) (Result, error)
	Start    func(StartArgs) (Result, error)
	Done     func(TargetArgs) (Result, error)
	Delete   func(TargetArgs) (Result, error)
	Sort     func(SortArgs) (Result, error)
	Auto     func(AutoArgs) (Result, error)
	View     func(ViewArgs) (Result, error)
	Demo     func() (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return missing(cmd.Type)
		}
		return handlers.Add(*cmd.Add)
	case TypeProgress:
		if handlers.Progress == nil {
			return missing(cmd.Type)
		}
		return handlers.Progress(*cmd.Progress)
	case TypeDuration:
		if handlers.Duration == nil {
			return missing(cmd.Type)
		}
		return handlers.Duration(*cmd.Duration)
	case TypeStart:
		if handlers.Start == nil {
			return missing(cmd.Type)
		}
		return handlers.Start(*cmd.Start)
	case TypeDone:
		if handlers.Done == nil {
			return missing(cmd.Type)
		}
		return handlers.Done(*cmd.Target)
	case TypeDelete:
		if handlers.Delete == nil {
			return missing(cmd.Type)
		}
		return handlers.Delete(*cmd.Target)
	case TypeSort:
		if handlers.Sort == nil {
			return missing(cmd.Type)
		}
		return handlers.Sort(*cmd.Sort)
	case TypeAuto:
		if handlers.Auto == nil {
			return missing(cmd.Type)
		}
		return handlers.Auto(*cmd.Auto)
	case TypeView:
		if handlers.View == nil {
			return missing(cmd.Type)
		}
		return handlers.View(*cmd.View)
	case TypeDemo:
		if handlers.Demo == nil {
			return missing(cmd.Type)
		}
		return handlers.Demo()
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}

func missing(t Type) (Result, error) {
	return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s handler not configured", t)}
}
