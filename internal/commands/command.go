package commands

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/sandeepkv93/taskline/internal/model"
)

type Type string

const (
	TypeAdd      Type = "add"
	TypeProgress Type = "progress"
	TypeDuration Type = "duration"
	TypeStart    Type = "start"
	TypeDone     Type = "done"
	TypeDelete   Type = "delete"
	TypeSort     Type = "sort"
	TypeAuto     Type = "auto"
	TypeView     Type = "view"
	TypeDemo     Type = "demo"
)

// SelectedTarget addresses the task under the selection instead of an id.
const SelectedTarget = "sel"

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

func invalid(format string, args ...any) error {
	return &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// AddArgs carries /add options. Zero values mean "use the view default";
// HasTime is false for tasks created without a start and HasClock is set
// when at: gave a time of day.
type AddArgs struct {
	Title      string
	Importance int
	HasTime    bool
	HasClock   bool
	Hour       int
	Minute     int
	Day        int
	Units      float64
}

type TargetArgs struct {
	Target string
}

type ProgressArgs struct {
	Target string
	Value  int
}

// DurationArgs is a duration in units of the current view (hours or days).
type DurationArgs struct {
	Target string
	Units  float64
}

// StartArgs is either a time of day in the current window (Date zero) or a
// full local date and time.
type StartArgs struct {
	Target string
	Hour   int
	Minute int
	Date   time.Time
}

// SortArgs leaves Order empty when the user did not pick one.
type SortArgs struct {
	Field model.SortField
	Order model.SortOrder
}

type AutoArgs struct {
	Enabled bool
}

type ViewArgs struct {
	Mode model.ViewMode
}

type Command struct {
	Type     Type
	Raw      string
	Add      *AddArgs
	Target   *TargetArgs
	Progress *ProgressArgs
	Duration *DurationArgs
	Start    *StartArgs
	Sort     *SortArgs
	Auto     *AutoArgs
	View     *ViewArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
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
		return parseAdd(input, args)
	case TypeProgress:
		return parseProgress(input, args)
	case TypeDuration:
		return parseDuration(input, args)
	case TypeStart:
		return parseStart(input, args)
	case TypeDone, TypeDelete:
		if len(args) != 1 {
			return Command{}, invalid("%s requires a task id or %q", head, SelectedTarget)
		}
		return Command{Type: Type(head), Raw: input, Target: &TargetArgs{Target: args[0]}}, nil
	case TypeSort:
		return parseSort(input, args)
	case TypeAuto:
		return parseAuto(input, args)
	case TypeView:
		if len(args) != 1 {
			return Command{}, invalid("view requires daily, weekly or monthly")
		}
		mode, err := model.ParseViewMode(args[0])
		if err != nil {
			return Command{}, invalid("unknown view %q", args[0])
		}
		return Command{Type: TypeView, Raw: input, View: &ViewArgs{Mode: mode}}, nil
	case TypeDemo:
		return Command{Type: TypeDemo, Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	out := AddArgs{}
	title := make([]string, 0, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, ":")
		switch {
		case ok && strings.EqualFold(key, "imp"):
			n, err := strconv.Atoi(value)
			if err != nil {
				return Command{}, invalid("importance must be a number: %q", value)
			}
			out.Importance = model.ClampImportance(n)
		case ok && strings.EqualFold(key, "at"):
			h, m, err := parseClock(value)
			if err != nil {
				return Command{}, err
			}
			out.HasTime, out.HasClock, out.Hour, out.Minute = true, true, h, m
		case ok && strings.EqualFold(key, "day"):
			n, err := strconv.Atoi(value)
			if err != nil || n < 1 || n > 31 {
				return Command{}, invalid("day must be between 1 and 31: %q", value)
			}
			out.HasTime, out.Day = true, n
		case ok && strings.EqualFold(key, "dur"):
			units, err := parseUnits(value)
			if err != nil {
				return Command{}, err
			}
			out.Units = units
		default:
			title = append(title, arg)
		}
	}
	out.Title = strings.TrimSpace(strings.Join(title, " "))
	if out.Title == "" {
		return Command{}, invalid("add requires a title")
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &out}, nil
}

func parseProgress(raw string, args []string) (Command, error) {
	if len(args) != 2 {
		return Command{}, invalid("progress requires target and value")
	}
	n, err := strconv.Atoi(strings.TrimSuffix(args[1], "%"))
	if err != nil {
		return Command{}, invalid("progress must be a number: %q", args[1])
	}
	return Command{Type: TypeProgress, Raw: raw, Progress: &ProgressArgs{Target: args[0], Value: model.ClampProgress(n)}}, nil
}

func parseDuration(raw string, args []string) (Command, error) {
	if len(args) != 2 {
		return Command{}, invalid("duration requires target and value")
	}
	units, err := parseUnits(args[1])
	if err != nil {
		return Command{}, err
	}
	return Command{Type: TypeDuration, Raw: raw, Duration: &DurationArgs{Target: args[0], Units: units}}, nil
}

// parseUnits reads a duration in view units. Negative values clamp to zero;
// the handler clamps to the view's limits.
func parseUnits(value string) (float64, error) {
	units, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(units) {
		return 0, invalid("duration must be a number: %q", value)
	}
	return max(units, 0), nil
}

func parseStart(raw string, args []string) (Command, error) {
	if len(args) != 2 {
		return Command{}, invalid("start requires target and time")
	}
	out := StartArgs{Target: args[0]}
	if strings.Contains(args[1], "T") {
		at, err := time.ParseInLocation("2006-01-02T15:04", args[1], time.Local)
		if err != nil {
			return Command{}, invalid("start must be HH:MM or YYYY-MM-DDTHH:MM: %q", args[1])
		}
		out.Date, out.Hour, out.Minute = at, at.Hour(), at.Minute()
	} else {
		h, m, err := parseClock(args[1])
		if err != nil {
			return Command{}, err
		}
		out.Hour, out.Minute = h, m
	}
	return Command{Type: TypeStart, Raw: raw, Start: &out}, nil
}

func parseSort(raw string, args []string) (Command, error) {
	if len(args) == 0 || len(args) > 2 {
		return Command{}, invalid("sort requires urgency, importance or none")
	}
	field := model.SortField(strings.ToLower(args[0]))
	if !field.IsValid() {
		return Command{}, invalid("unknown sort field %q", args[0])
	}
	out := SortArgs{Field: field}
	if len(args) == 2 {
		out.Order = model.SortOrder(strings.ToLower(args[1]))
		if !out.Order.IsValid() {
			return Command{}, invalid("sort order must be asc or desc: %q", args[1])
		}
	}
	return Command{Type: TypeSort, Raw: raw, Sort: &out}, nil
}

func parseAuto(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, invalid("auto requires on or off")
	}
	switch strings.ToLower(args[0]) {
	case "on", "true", "1":
		return Command{Type: TypeAuto, Raw: raw, Auto: &AutoArgs{Enabled: true}}, nil
	case "off", "false", "0":
		return Command{Type: TypeAuto, Raw: raw, Auto: &AutoArgs{Enabled: false}}, nil
	default:
		return Command{}, invalid("auto requires on or off: %q", args[0])
	}
}

func parseClock(value string) (int, int, error) {
	at, err := time.Parse("15:04", value)
	if err != nil {
		return 0, 0, invalid("time must be HH:MM: %q", value)
	}
	return at.Hour(), at.Minute(), nil
}
