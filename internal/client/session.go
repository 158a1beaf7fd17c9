// Package client is the browser side state of the poster tool: the selected file,
// the in-flight flag, the last error and the editable event collection.
package client

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"poster-events/internal/model"
	"poster-events/pkg/icalendar"
	"poster-events/pkg/log"
)

const (
	processPath           = "/api/process"
	defaultRequestTimeout = 2 * time.Minute
)

// Config configures a Session.
type Config struct {
	BaseURL    string // empty = same origin
	HTTPClient *http.Client
	Logger     log.Logger

	// Calendar export
	CalendarName string
	ProductID    string
	Location     *time.Location // nil = floating local time
}

// State is a read-only copy of the session state.
type State struct {
	FileName    string
	HasFile     bool
	ReadingFile bool // bytes of the selected file are still being read
	Loading     bool
	Error       string
	Events   []model.Event // nil = no results yet
}

// Session holds UI state. It is safe for concurrent use; OnChange callbacks run
// without the lock held.
type Session struct {
	mu sync.Mutex

	baseURL    string
	httpClient *http.Client
	l          log.Logger
	calName    string
	productID  string
	location   *time.Location

	fileName string
	fileData []byte
	reading  bool
	readSeq  uint64
	loading  bool
	errMsg   string
	events   []model.Event

	onChange func(State)

	// overridable in tests
	now    func() time.Time
	newUID func() string
}

// New creates a Session.
func New(cfg Config) *Session {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: defaultRequestTimeout}
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewNop()
	}
	if cfg.CalendarName == "" {
		cfg.CalendarName = icalendar.DefaultName
	}
	return &Session{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: cfg.HTTPClient,
		l:          cfg.Logger,
		calName:    cfg.CalendarName,
		productID:  cfg.ProductID,
		location:   cfg.Location,
	}
}

// OnChange registers the re-render callback.
func (s *Session) OnChange(fn func(State)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// SelectFile replaces the selected file. An empty name clears the selection.
func (s *Session) SelectFile(name string, data []byte) {
	s.mu.Lock()
	s.readSeq++
	s.reading = false
	s.fileName = name
	s.fileData = data
	s.notifyLocked()
}

// BeginFileRead selects name while its bytes are read asynchronously. Submit is
// refused until FinishFileRead is called with the returned token.
func (s *Session) BeginFileRead(name string) uint64 {
	s.mu.Lock()
	s.readSeq++
	seq := s.readSeq
	s.reading = true
	s.fileName = name
	s.fileData = nil
	s.notifyLocked()
	return seq
}

// FinishFileRead stores the bytes of a read started by BeginFileRead; empty data
// (a failed read) clears the selection. It reports false and changes nothing when
// another file was selected in the meantime.
func (s *Session) FinishFileRead(seq uint64, data []byte) bool {
	s.mu.Lock()
	if seq != s.readSeq || !s.reading {
		s.mu.Unlock()
		return false
	}
	s.reading = false
	s.fileData = data
	if len(data) == 0 {
		s.fileName = ""
	}
	s.notifyLocked()
	return true
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Session) stateLocked() State {
	st := State{
		FileName:    s.fileName,
		HasFile:     s.fileName != "" || len(s.fileData) > 0,
		ReadingFile: s.reading,
		Loading:     s.loading,
		Error:       s.errMsg,
	}
	if s.events != nil {
		st.Events = append(make([]model.Event, 0, len(s.events)), s.events...)
	}
	return st
}

// notifyLocked releases the lock and then calls the change callback.
func (s *Session) notifyLocked() {
	st := s.stateLocked()
	fn := s.onChange
	s.mu.Unlock()
	if fn != nil {
		fn(st)
	}
}
