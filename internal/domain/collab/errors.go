package collab

import "fmt"

// DomainError is the base error type for collaboration errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// NotAttachedError indicates an action was invoked on a component whose
// mediator reference was never set. This is a programming error, not an
// operational one: the action fails before producing any effect.
type NotAttachedError struct {
	*DomainError
	ComponentName string
}

func NewNotAttachedError(componentName string) *NotAttachedError {
	return &NotAttachedError{
		DomainError: &DomainError{
			Message: fmt.Sprintf("component %s is not attached to a mediator", componentName),
		},
		ComponentName: componentName,
	}
}
