package cli

import (
	"bytes"
	"context"
	"strings"

	"unitdesk/internal/convert"
	"unitdesk/internal/logger"
	"unitdesk/internal/models"
	"unitdesk/internal/service"
)

// ---- Service Mocks ----

type mockConverter struct {
	entry models.HistoryEntry
	err   error

	calls int
	ops   []convert.Operation
}

func (m *mockConverter) Execute(ctx context.Context, op convert.Operation) (models.HistoryEntry, error) {
	m.calls++
	m.ops = append(m.ops, op)
	if m.err != nil {
		return models.HistoryEntry{}, m.err
	}
	return m.entry, nil
}

type mockHistory struct {
	entries []models.HistoryEntry
	err     error
	calls   int
}

func (m *mockHistory) List(ctx context.Context) ([]models.HistoryEntry, error) {
	m.calls++
	return m.entries, m.err
}

// ---- Shared Test Helpers ----

// newTestSession builds a session reading the scripted input and writing to
// the returned buffer.
func newTestSession(svc *service.Service, input string) (*Session, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewSession(svc, logger.Get(logger.ErrorLevel), strings.NewReader(input), out), out
}
