package ask

// Static answers every question deterministically without touching the
// terminal. The zero value accepts all defaults: Input returns the
// documented default, Select the first option, MultiSelect nothing, and
// Confirm the default answer. Populated maps override per question.
type Static struct {
	InputAnswers   map[string]string
	SelectAnswers  map[string]string
	MultiAnswers   map[string][]string
	ConfirmAnswers map[string]bool
}

func (s *Static) Input(question, def string) (string, error) {
	if answer, ok := s.InputAnswers[question]; ok {
		return answer, nil
	}
	return def, nil
}

func (s *Static) Select(question string, options []string) (string, error) {
	if answer, ok := s.SelectAnswers[question]; ok {
		return answer, nil
	}
	return options[0], nil
}

func (s *Static) MultiSelect(question string, options []string) ([]string, error) {
	return s.MultiAnswers[question], nil
}

func (s *Static) Confirm(question string, defaultYes bool) (bool, error) {
	if answer, ok := s.ConfirmAnswers[question]; ok {
		return answer, nil
	}
	return defaultYes, nil
}
