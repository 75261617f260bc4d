package status

// Category classifies a status by its retry semantics.
type Category string

// Categories define how a failed operation should be handled by the caller.
const (
	// CategoryTransient indicates failures where a later call may succeed.
	// Examples: platform service construction failed, factory not loadable yet.
	CategoryTransient Category = "transient"

	// CategoryPermanent indicates protocol violations where retry will not
	// help. Examples: registering into an occupied slot, nil instance.
	CategoryPermanent Category = "permanent"

	// CategoryInternal indicates invariant violations and bugs.
	CategoryInternal Category = "internal"
)

// String returns the string representation of the category.
func (c Category) String() string {
	return string(c)
}

// IsRetryable returns true if statuses in this category may succeed on retry.
func (c Category) IsRetryable() bool {
	return c == CategoryTransient
}

// Code identifies a specific failure within a category.
type Code string

// Codes for the failure modes of the interactivity core.
const (
	// Protocol violations (permanent).
	CodeAlreadyRegistered Code = "ALREADY_REGISTERED" // slot already occupied
	CodeInvalidInstance   Code = "INVALID_INSTANCE"   // nil/empty instance handed in
	CodeNotRegistered     Code = "NOT_REGISTERED"     // lookup missed, no construction requested

	// Construction failures (transient, slot left empty so a retry may succeed).
	CodeCreateFailed       Code = "CREATE_FAILED"       // platform service construction failed
	CodeFactoryUnavailable Code = "FACTORY_UNAVAILABLE" // factory loader failed

	// Internal.
	CodeHookAlreadySet Code = "HOOK_ALREADY_SET" // teardown hook registered twice
	CodeInternal       Code = "INTERNAL"         // unexpected internal failure
)

// String returns the string representation of the code.
func (c Code) String() string {
	return string(c)
}

// DefaultCategory returns the category a code belongs to.
func (c Code) DefaultCategory() Category {
	switch c {
	case CodeAlreadyRegistered, CodeInvalidInstance, CodeNotRegistered:
		return CategoryPermanent
	case CodeCreateFailed, CodeFactoryUnavailable:
		return CategoryTransient
	case CodeHookAlreadySet, CodeInternal:
		return CategoryInternal
	default:
		return CategoryInternal
	}
}

// codeDescriptions provides human-readable descriptions for codes.
var codeDescriptions = map[Code]string{
	CodeAlreadyRegistered:  "service slot already occupied",
	CodeInvalidInstance:    "instance is nil or empty",
	CodeNotRegistered:      "service not registered",
	CodeCreateFailed:       "platform service construction failed",
	CodeFactoryUnavailable: "interactivity factory unavailable",
	CodeHookAlreadySet:     "teardown hook already registered",
	CodeInternal:           "internal error",
}

// Description returns a human-readable description for the code.
func (c Code) Description() string {
	if desc, ok := codeDescriptions[c]; ok {
		return desc
	}
	return "unknown status"
}
