package nn

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
)

// The network below is constructed so that every hidden pre-activation
// is at least 0.16 away from zero: inputs and the first three weight
// columns are strictly positive, while the fourth column and its bias
// are negative enough to keep that unit off for every sample. Central
// differences with a 1e-6 step therefore never straddle a ReLU kink.
func gradCheckNet() (*TwoLayerNet, *mat.Dense, []int) {
	net := NewTwoLayerNet(3, 4, 3, 0.1)
	net.W1 = mat.NewDense(3, 4, []float64{
		0.3, 0.8, 0.2, -0.6,
		0.5, 0.1, 0.7, -0.9,
		0.9, 0.4, 0.3, -0.5,
	})
	net.B1 = mat.NewVecDense(4, []float64{0.1, 0.2, 0.3, -0.5})
	net.W2 = mat.NewDense(4, 3, []float64{
		0.2, -0.4, 0.6,
		-0.3, 0.5, 0.1,
		0.7, 0.2, -0.5,
		0.4, -0.1, 0.3,
	})
	net.B2 = mat.NewVecDense(3, []float64{0.05, -0.1, 0.15})

	x := mat.NewDense(5, 3, []float64{
		0.2, 0.7, 1.1,
		1.0, 0.3, 0.8,
		0.5, 1.5, 0.4,
		1.2, 0.9, 0.6,
		0.8, 0.4, 1.3,
	})
	y := []int{0, 2, 1, 0, 2}
	return net, x, y
}

func TestLossGradientsNumerically(t *testing.T) {
	net, x, y := gradCheckNet()
	const reg = 0.05

	_, grads, err := net.Loss(x, y, reg)
	if err != nil {
		t.Fatalf("Loss() error = %v", err)
	}

	loss := func() float64 {
		l, _, err := net.Loss(x, y, reg)
		if err != nil {
			t.Fatalf("Loss() error during gradient check = %v", err)
		}
		return l
	}

	checks := []struct {
		name     string
		analytic []float64
		theta    []float64
		set      func([]float64)
	}{
		{
			name:     "W1",
			analytic: grads.W1.RawMatrix().Data,
			theta:    append([]float64(nil), net.W1.RawMatrix().Data...),
			set:      func(v []float64) { copy(net.W1.RawMatrix().Data, v) },
		},
		{
			name:     "B1",
			analytic: grads.B1.RawVector().Data,
			theta:    append([]float64(nil), net.B1.RawVector().Data...),
			set:      func(v []float64) { copy(net.B1.RawVector().Data, v) },
		},
		{
			name:     "W2",
			analytic: grads.W2.RawMatrix().Data,
			theta:    append([]float64(nil), net.W2.RawMatrix().Data...),
			set:      func(v []float64) { copy(net.W2.RawMatrix().Data, v) },
		},
		{
			name:     "B2",
			analytic: grads.B2.RawVector().Data,
			theta:    append([]float64(nil), net.B2.RawVector().Data...),
			set:      func(v []float64) { copy(net.B2.RawVector().Data, v) },
		},
	}

	settings := &fd.Settings{Formula: fd.Central, Step: 1e-6}
	for _, tc := range checks {
		t.Run(tc.name, func(t *testing.T) {
			f := func(v []float64) float64 {
				tc.set(v)
				return loss()
			}
			numeric := fd.Gradient(nil, f, tc.theta, settings)
			tc.set(tc.theta)

			for i, a := range tc.analytic {
				n := numeric[i]
				denom := math.Max(1e-8, math.Abs(a)+math.Abs(n))
				if rel := math.Abs(a-n) / denom; rel > 1e-6 {
					t.Errorf("grad %s[%d]: analytic %v, numeric %v, relative error %v",
						tc.name, i, a, n, rel)
				}
			}
		})
	}
}

func TestLossGradientsNumericallyNoReg(t *testing.T) {
	// Same check without regularization, so only the data term is
	// exercised.
	net, x, y := gradCheckNet()

	_, grads, err := net.Loss(x, y, 0)
	if err != nil {
		t.Fatalf("Loss() error = %v", err)
	}

	theta := append([]float64(nil), net.W2.RawMatrix().Data...)
	f := func(v []float64) float64 {
		copy(net.W2.RawMatrix().Data, v)
		l, _, err := net.Loss(x, y, 0)
		if err != nil {
			t.Fatalf("Loss() error during gradient check = %v", err)
		}
		return l
	}
	numeric := fd.Gradient(nil, f, theta, &fd.Settings{Formula: fd.Central, Step: 1e-6})
	copy(net.W2.RawMatrix().Data, theta)

	for i, a := range grads.W2.RawMatrix().Data {
		n := numeric[i]
		denom := math.Max(1e-8, math.Abs(a)+math.Abs(n))
		if rel := math.Abs(a-n) / denom; rel > 1e-6 {
			t.Errorf("grad W2[%d]: analytic %v, numeric %v, relative error %v", i, a, n, rel)
		}
	}
}
