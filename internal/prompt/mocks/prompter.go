// Package mocks provides test doubles for the prompt package.
package mocks

// PrompterMock implements prompt.Prompter with function fields.
type PrompterMock struct {
	// PrintFunc mocks the Print method. Nil means Print is a no-op.
	PrintFunc func(message string)

	// ConfirmFunc mocks the Confirm method.
	ConfirmFunc func(title, description string) (bool, error)

	// Printed records every message passed to Print.
	Printed []string
}

// Print calls PrintFunc if set and records the message.
func (m *PrompterMock) Print(message string) {
	m.Printed = append(m.Printed, message)
	if m.PrintFunc != nil {
		m.PrintFunc(message)
	}
}

// Confirm calls ConfirmFunc.
func (m *PrompterMock) Confirm(title, description string) (bool, error) {
	if m.ConfirmFunc == nil {
		panic("PrompterMock.ConfirmFunc: method is nil but Confirm was just called")
	}
	return m.ConfirmFunc(title, description)
}
