package predict

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/poiesic/worklens/core"
	"github.com/poiesic/worklens/features"
)

const (
	// defaultLearningRate controls the step size of incremental updates.
	defaultLearningRate = 0.01

	// weightBound clips every weight after an update. Bounded weights
	// keep single adversarial examples from blowing up the model.
	weightBound = 5.0

	// accuracySmoothing is the exponential moving average factor for
	// rolling accuracy.
	accuracySmoothing = 0.1

	// contributionFloor is the smallest absolute feature contribution
	// reported in explanations.
	contributionFloor = 0.01

	// maxContributions caps the number of reported contributions.
	maxContributions = 5
)

// Status thresholds over the public domain probability.
const (
	publicDomainThreshold  = 0.85
	likelyExpiredThreshold = 0.65
	unknownThreshold       = 0.35
	likelyActiveThreshold  = 0.15
)

// Contribution is one feature's signed pull on a prediction.
type Contribution struct {
	Feature string
	Value   float64
}

// Prediction is the model's view of one work.
type Prediction struct {
	Status                  core.CopyrightStatus
	ProbabilityPublicDomain float64
	Confidence              float64
	Reasoning               string
	Contributions           []Contribution
}

// Stats summarizes the model's training history.
type Stats struct {
	SampleCount     int64
	RollingAccuracy float64
	LastTrained     time.Time
	FeatureCount    int
}

// modelState is an immutable snapshot of the learned parameters.
// Predictions read the current snapshot; training builds a new one and
// swaps it in.
type modelState struct {
	weights     []float64
	bias        float64
	samples     int64
	accuracy    float64
	lastTrained time.Time
}

// Predictor is an online logistic model over work features.
// Safe for concurrent use; predictions never block behind training.
type Predictor struct {
	extractor    *features.Extractor
	learningRate float64

	state   atomic.Pointer[modelState]
	trainMu sync.Mutex // serializes state transitions

	logger *slog.Logger
}

// Option configures a Predictor.
type Option func(*Predictor)

// WithLearningRate overrides the incremental update step size.
func WithLearningRate(rate float64) Option {
	return func(p *Predictor) {
		if rate > 0 {
			p.learningRate = rate
		}
	}
}

// WithLogger sets the logger used by the predictor.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Predictor) {
		p.logger = logger.With("component", "predictor")
	}
}

// NewPredictor creates a predictor seeded with domain-prior weights.
func NewPredictor(extractor *features.Extractor, opts ...Option) (*Predictor, error) {
	if extractor == nil {
		return nil, ErrExtractorRequired
	}

	p := &Predictor{
		extractor:    extractor,
		learningRate: defaultLearningRate,
		logger:       slog.Default().With("component", "predictor"),
	}
	p.state.Store(&modelState{weights: initialWeights()})

	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// initialWeights encodes coarse copyright priors in the feature schema
// order. These are starting points, not a trained model; incremental
// training adjusts them.
func initialWeights() []float64 {
	w := make([]float64, core.FeatureCount)

	// Year features carry the strongest priors.
	w[0] = 0.3  // normalized_age
	w[1] = 0.2  // decades_since_pub
	w[2] = 0.5  // before_pd_threshold
	w[3] = 0.4  // pre_1900
	w[4] = 0.3  // year_1900_1950
	w[5] = -0.4 // year_1950_1980
	w[6] = -0.9 // year_1980_2000
	w[7] = -1.1 // post_2000

	w[8] = 0.3  // years_since_death_normalized
	w[9] = 0.4  // death_70_plus
	w[10] = 0.5 // death_95_plus

	// Title features are weak signals.
	w[15] = 0.05 // starts_with_the

	w[17] = -0.1 // is_corporate
	w[19] = 0.4  // is_classical
	w[20] = -0.1 // creator_alive_prob

	w[26] = 0.05 // type_software

	// Likelihood features restate the priors directly.
	w[29] = 0.4 // pd_probability
	w[30] = 0.3 // death_pd_probability
	w[31] = 0.5 // combined_probability
	w[32] = 0.1 // type_adjustment

	return w
}

// Predict scores a work in a jurisdiction.
func (p *Predictor) Predict(work *core.Work, jurisdiction string) (*Prediction, error) {
	if work == nil {
		return nil, fmt.Errorf("%w: work is nil", core.ErrInvalidWork)
	}
	return p.PredictFeatures(p.extractor.Extract(work, jurisdiction))
}

// PredictFeatures scores a pre-extracted feature vector.
func (p *Predictor) PredictFeatures(v core.FeatureVector) (*Prediction, error) {
	if err := core.ValidateFeatures(v); err != nil {
		return nil, err
	}

	state := p.state.Load()
	probability := sigmoid(dot(v, state.weights) + state.bias)
	status, confidence := interpret(probability, v)

	return &Prediction{
		Status:                  status,
		ProbabilityPublicDomain: probability,
		Confidence:              confidence,
		Reasoning:               reasoning(v, probability),
		Contributions:           contributions(v, state.weights),
	}, nil
}

// Train performs one incremental gradient step on a labeled example.
// The example's weight scales the step; zero means 1.
func (p *Predictor) Train(example core.TrainingExample) error {
	if err := core.ValidateFeatures(example.Features); err != nil {
		return err
	}

	target := 0.0
	if example.PublicDomain {
		target = 1.0
	}
	sampleWeight := example.Weight
	if sampleWeight == 0 {
		sampleWeight = 1.0
	}

	p.trainMu.Lock()
	defer p.trainMu.Unlock()

	old := p.state.Load()
	prediction := sigmoid(dot(example.Features, old.weights) + old.bias)
	err := target - prediction

	step := p.learningRate * sampleWeight
	grad := err * prediction * (1 - prediction)

	weights := make([]float64, len(old.weights))
	for i := range weights {
		weights[i] = clip(old.weights[i]+step*grad*example.Features[i], weightBound)
	}
	bias := clip(old.bias+step*err, weightBound)

	correct := 0.0
	if (prediction > 0.5) == (target > 0.5) {
		correct = 1.0
	}
	accuracy := correct
	if old.samples > 0 {
		accuracy = old.accuracy*(1-accuracySmoothing) + correct*accuracySmoothing
	}

	p.state.Store(&modelState{
		weights:     weights,
		bias:        bias,
		samples:     old.samples + 1,
		accuracy:    accuracy,
		lastTrained: time.Now(),
	})

	p.logger.Debug("trained on sample",
		"samples", old.samples+1,
		"error", err,
		"source", example.Source)
	return nil
}

// State exports the learned parameters for persistence.
func (p *Predictor) State() *core.ModelState {
	state := p.state.Load()
	weights := make([]float64, len(state.weights))
	copy(weights, state.weights)
	return &core.ModelState{
		Weights:         weights,
		Bias:            state.bias,
		SampleCount:     state.samples,
		RollingAccuracy: state.accuracy,
		LastTrained:     state.lastTrained,
	}
}

// Restore replaces the model parameters with a persisted state.
// States from a different feature schema are rejected.
func (p *Predictor) Restore(state *core.ModelState) error {
	if state == nil || len(state.Weights) != core.FeatureCount {
		return fmt.Errorf("%w: got %d weights, want %d",
			ErrIncompatibleState, stateWeightCount(state), core.FeatureCount)
	}

	weights := make([]float64, len(state.Weights))
	copy(weights, state.Weights)

	p.trainMu.Lock()
	defer p.trainMu.Unlock()
	p.state.Store(&modelState{
		weights:     weights,
		bias:        state.Bias,
		samples:     state.SampleCount,
		accuracy:    state.RollingAccuracy,
		lastTrained: state.LastTrained,
	})
	return nil
}

// Stats returns the model's training statistics.
func (p *Predictor) Stats() Stats {
	state := p.state.Load()
	return Stats{
		SampleCount:     state.samples,
		RollingAccuracy: state.accuracy,
		LastTrained:     state.lastTrained,
		FeatureCount:    len(state.weights),
	}
}

// interpret maps a probability to a status and confidence, discounted
// by data completeness.
func interpret(probability float64, v core.FeatureVector) (core.CopyrightStatus, float64) {
	var status core.CopyrightStatus
	var confidence float64

	switch {
	case probability >= publicDomainThreshold:
		status, confidence = core.StatusPublicDomain, probability
	case probability >= likelyExpiredThreshold:
		status, confidence = core.StatusLikelyExpired, probability
	case probability >= unknownThreshold:
		status = core.StatusUnknown
		confidence = 0.5 - math.Abs(probability-0.5)
	case probability >= likelyActiveThreshold:
		status, confidence = core.StatusLikelyActive, 1-probability
	default:
		status, confidence = core.StatusActive, 1-probability
	}

	// Missing years weaken whatever the probability says.
	completeness := 1.0
	if !yearKnown(v) {
		completeness *= 0.7
	}
	if !deathKnown(v) {
		completeness *= 0.8
	}

	return status, confidence * completeness
}

// yearKnown reports whether the publication year was present. A known
// year sets exactly one of the era indicator features; the normalized
// age alone is ambiguous because a work of exactly 100 years also
// scores 0.5 there.
func yearKnown(v core.FeatureVector) bool {
	return v[3]+v[4]+v[5]+v[6]+v[7] > 0
}

// deathKnown reports whether the creator's death year was present.
// The unknown case zeroes both duration indicators while pinning the
// normalized value to 0.5; a real death 75 years back hits 0.5 too but
// always sets the 70-plus indicator.
func deathKnown(v core.FeatureVector) bool {
	return v[8] != 0.5 || v[9] != 0 || v[10] != 0
}

// reasoning names the indicators that drove the probability.
func reasoning(v core.FeatureVector, probability float64) string {
	var reasons []string

	if v[2] > 0.5 {
		reasons = append(reasons, "Published before the public domain threshold date")
	}
	if v[3] > 0.5 {
		reasons = append(reasons, "Published before 1900 (very likely public domain)")
	}
	if v[9] > 0.5 {
		reasons = append(reasons, "Creator deceased for 70+ years")
	}
	if v[10] > 0.5 {
		reasons = append(reasons, "Creator deceased for 95+ years")
	}
	if v[19] > 0.5 {
		reasons = append(reasons, "Creator is a historical/classical figure")
	}
	if v[7] > 0.5 {
		reasons = append(reasons, "Published after 2000 (likely still protected)")
	}
	if v[17] > 0.5 {
		reasons = append(reasons, "Work appears to have corporate authorship")
	}

	if len(reasons) == 0 {
		if probability > 0.5 {
			reasons = append(reasons, "Based on available metadata, work appears to be in or near public domain")
		} else {
			reasons = append(reasons, "Based on available metadata, work appears to be under copyright protection")
		}
	}

	out := ""
	for i, r := range reasons {
		if i > 0 {
			out += "; "
		}
		out += r
	}
	return out + "."
}

// contributions returns the strongest per-feature pulls on the score.
func contributions(v core.FeatureVector, weights []float64) []Contribution {
	names := features.Names()
	var out []Contribution
	for i := range v {
		c := v[i] * weights[i]
		if math.Abs(c) > contributionFloor {
			out = append(out, Contribution{Feature: names[i], Value: c})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return math.Abs(out[i].Value) > math.Abs(out[j].Value)
	})
	if len(out) > maxContributions {
		out = out[:maxContributions]
	}
	return out
}

func sigmoid(x float64) float64 {
	if x > 500 {
		x = 500
	} else if x < -500 {
		x = -500
	}
	return 1 / (1 + math.Exp(-x))
}

func dot(v core.FeatureVector, w []float64) float64 {
	sum := 0.0
	for i := range v {
		sum += v[i] * w[i]
	}
	return sum
}

func clip(v, bound float64) float64 {
	if v > bound {
		return bound
	}
	if v < -bound {
		return -bound
	}
	return v
}

func stateWeightCount(state *core.ModelState) int {
	if state == nil {
		return 0
	}
	return len(state.Weights)
}
