package hvac

import (
	"strings"

	"github.com/barkimedes/go-deepcopy"
	"github.com/formicidae-tracker/olympus/pkg/tm"
	"github.com/sirupsen/logrus"
)

// SessionState is the entry state of a mixed air session.
type SessionState int

const (
	Idle SessionState = iota
	Entering
	Ready
	Computed
)

func (s SessionState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Entering:
		return "entering"
	case Ready:
		return "ready"
	case Computed:
		return "computed"
	}
	return "<unknown>"
}

// Session collects air samples entered by a technician and computes
// their mix on demand. It owns the sample list exclusively and is not
// safe for concurrent use.
type Session struct {
	sink   ResultSink
	logger *logrus.Entry

	state                 SessionState
	temperature, flowRate string
	indoor                bool

	samples             []AirSample
	result              *MixResult
	finalAnswerReceived bool
}

// NewSession creates an idle session recording its results to sink. A
// nil sink discards them.
func NewSession(sink ResultSink) *Session {
	if sink == nil {
		sink = DiscardSink
	}
	return &Session{
		sink:   sink,
		logger: tm.NewLogger("session/mixed-air"),
		indoor: true,
	}
}

func (s *Session) State() SessionState {
	return s.state
}

func (s *Session) updateDraftState() {
	if len(s.samples) > 0 {
		return
	}
	if len(s.temperature) == 0 && len(s.flowRate) == 0 {
		s.state = Idle
	} else {
		s.state = Entering
	}
}

// SetTemperature sets the temperature text field.
func (s *Session) SetTemperature(text string) {
	s.temperature = strings.TrimSpace(text)
	s.updateDraftState()
}

// SetFlowRate sets the CFM text field.
func (s *Session) SetFlowRate(text string) {
	s.flowRate = strings.TrimSpace(text)
	s.updateDraftState()
}

// SetIndoor selects the air stream of the next sample.
func (s *Session) SetIndoor(indoor bool) {
	s.indoor = indoor
}

func (s *Session) Indoor() bool {
	return s.indoor
}

// Drafts returns the current temperature and CFM text fields.
func (s *Session) Drafts() (temperature, flowRate string) {
	return s.temperature, s.flowRate
}

// AddSample validates the text fields and appends the resulting
// sample. On failure the fields are kept for correction.
func (s *Session) AddSample() (AirSample, error) {
	s.finalAnswerReceived = false
	sample, err := ParseAirSample(s.temperature, s.flowRate, s.indoor)
	if err != nil {
		return AirSample{}, err
	}
	s.Append(sample)
	s.temperature = ""
	s.flowRate = ""
	return sample, nil
}

// Append adds an already validated sample, as read from a sample file.
func (s *Session) Append(sample AirSample) {
	if InRange(sample.Temperature) == false || InRange(sample.FlowRate) == false {
		s.logger.WithField("sample", sample.String()).Warn("sample outside of usual field range")
	}
	s.samples = append(s.samples, sample)
	s.finalAnswerReceived = false
	s.state = Ready
}

// Compute mixes all samples entered so far and records the result. A
// failed computation changes nothing.
func (s *Session) Compute() (MixResult, error) {
	res, err := ComputeMixedTemperature(s.samples)
	if err != nil {
		return MixResult{}, err
	}
	s.logger.WithFields(logrus.Fields{
		"weights": res.Weights,
		"result":  res.Formatted(),
	}).Debug("mixed air computed")

	s.result = &res
	s.state = Computed
	s.finalAnswerReceived = true
	s.sink.Record(MixedAirTemp, MixedAirInputs(s.samples), res.Formatted())
	return res, nil
}

// Reset discards all samples, text fields and result.
func (s *Session) Reset() {
	s.temperature = ""
	s.flowRate = ""
	s.samples = nil
	s.result = nil
	s.finalAnswerReceived = false
	s.state = Idle
}

// Samples returns a copy of the entered samples, in entry order.
func (s *Session) Samples() []AirSample {
	if len(s.samples) == 0 {
		return nil
	}
	return deepcopy.MustAnything(s.samples).([]AirSample)
}

// Result returns the last computed result, if any.
func (s *Session) Result() (MixResult, bool) {
	if s.result == nil {
		return MixResult{}, false
	}
	return *deepcopy.MustAnything(s.result).(*MixResult), true
}

// FinalAnswerReceived is true from a successful Compute until the next
// sample is entered.
func (s *Session) FinalAnswerReceived() bool {
	return s.finalAnswerReceived
}
