package formbind

// Transform converts values between the control-facing and model-facing
// representations. Read runs control -> model, Write runs model -> control.
// Implementations should round-trip stably; this is not enforced.
type Transform interface {
	Read(v any) any
	Write(v any) any
}

// Identity returns the pass-through Transform.
func Identity() Transform { return identity{} }

type identity struct{}

func (identity) Read(v any) any  { return v }
func (identity) Write(v any) any { return v }

// TransformFuncs adapts a pair of functions to Transform. A nil function acts
// as identity for its direction.
type TransformFuncs struct {
	ReadFunc  func(any) any
	WriteFunc func(any) any
}

func (t TransformFuncs) Read(v any) any {
	if t.ReadFunc == nil {
		return v
	}
	return t.ReadFunc(v)
}

func (t TransformFuncs) Write(v any) any {
	if t.WriteFunc == nil {
		return v
	}
	return t.WriteFunc(v)
}

// Translator associates a CSS class with a Transform.
type Translator struct {
	Class     string
	Transform Transform
}
