package mocks

type scope struct {
	recorder *Recorder
}

func (s *scope) AddEvent(_ string) {}

func (s *scope) End() {}

func (s *scope) SetAttribute(key string, value any) {
	s.recorder.set(key, value)
}

func (s *scope) SetAttributes(attributes map[string]any) {
	for k, v := range attributes {
		s.recorder.set(k, v)
	}
}

func (s *scope) TraceError(err error) {
	if err != nil {
		s.recorder.trace(err)
	}
}

func (s *scope) TraceIfError(err error) {
	s.TraceError(err)
}
