package gui

// Option configures a single widget call.
type Option func(*options)

type options struct {
	values map[string]any
}

// OptKey is a typed option key with a default.
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey declares an option key.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// WithOpt sets key to value.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.values == nil {
			o.values = make(map[string]any)
		}
		o.values[key.name] = value
	}
}

// GetOpt reads key from o, falling back to the key default.
func GetOpt[T any](o options, key OptKey[T]) T {
	if v, ok := o.values[key.name]; ok {
		if typed, ok := v.(T); ok {
			return typed
		}
	}
	return key.def
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Built-in option keys.
var (
	OptID       = NewOptKey("id", "")
	OptWidth    = NewOptKey("width", float32(0))
	OptStep     = NewOptKey("step", float32(0))
	OptDisabled = NewOptKey("disabled", false)
)

// WithID overrides the label-derived widget ID.
func WithID(id string) Option { return WithOpt(OptID, id) }

// WithWidth sets the widget width in pixels.
func WithWidth(width float32) Option { return WithOpt(OptWidth, width) }

// WithStep sets the keyboard and wheel step of value widgets.
func WithStep(step float32) Option { return WithOpt(OptStep, step) }

// WithDisabled draws the widget without reacting to input.
func WithDisabled(disabled bool) Option { return WithOpt(OptDisabled, disabled) }
