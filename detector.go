package langdet

// DefaultAlpha is the smoothing parameter a detector is configured with
// unless overridden via WithAlpha.
const DefaultAlpha = 0.5

// Detector ties a finished model to the smoothing parameter the detection
// pass runs with. The handle is read-only; the scoring algorithm itself
// lives with the consumer.
type Detector struct {
	model *Model
	alpha float64
}

type DetectorOption func(d *Detector)

// WithAlpha sets the detector's smoothing parameter. The useful domain is
// (0, 1]; out-of-range values are forwarded untouched, their effect on
// detection quality is the detector's problem.
func WithAlpha(alpha float64) DetectorOption {
	return func(d *Detector) { d.alpha = alpha }
}

// NewDetector validates the model and returns a detector handle over it.
// It fails with ErrEmptyModel when no profile was merged into the model.
func NewDetector(m *Model, opts ...DetectorOption) (*Detector, error) {
	if m.Len() == 0 {
		return nil, ErrEmptyModel
	}
	d := &Detector{
		model: m,
		alpha: DefaultAlpha,
	}
	for _, o := range opts {
		o(d)
	}
	return d, nil
}

// Alpha returns the configured smoothing parameter.
func (d *Detector) Alpha() float64 {
	return d.alpha
}

// Languages returns the candidate languages in detection-index order.
func (d *Detector) Languages() []string {
	return d.model.Languages()
}

// Lookup returns the model's probability vector for ngram; see Model.Lookup.
func (d *Detector) Lookup(ngram string) ([]float64, bool) {
	return d.model.Lookup(ngram)
}
