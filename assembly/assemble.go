package assembly

import (
	"fmt"
	"sync"

	"github.com/notargets/gofea/utils"
)

/*
Kernel is the integrand of a bilinear form: given one trial basis
function u, one test basis function v and the shared pointwise fields,
return their Nq x K elementwise product. The assembler contracts the
result with the integration weights; kernels never see DX.
*/
type Kernel func(u, v *DiscreteField, w *FieldSet) utils.Matrix

// LinearKernel is the integrand of a linear form over test functions.
type LinearKernel func(v *DiscreteField, w *FieldSet) utils.Matrix

/*
BilinearForm assembles a kernel over a trial and a test basis into COO
triplets. NThreads > 1 splits the flat (trial, test) pair space into
static contiguous buckets, one goroutine each, writing disjoint
preallocated regions of the output; the triplet stream is identical to
the sequential one entry for entry. Threads are joined before Assemble
returns, and a panicking kernel aborts the process.
*/
type BilinearForm struct {
	Kernel   Kernel
	NThreads int
}

/*
Assemble integrates the form for every basis function pair and element.
A nil test basis reuses the trial basis (the Galerkin case). The bases
must be built on the same quadrature grid and element set; global sizes
may differ (rectangular operators). Duplicate (row, col) entries are
not summed here, see COOMatrix.
*/
func (bf *BilinearForm) Assemble(ub, vb *Basis, extra map[string]*DiscreteField) (A COOMatrix) {
	if vb == nil {
		vb = ub
	}
	var (
		nq = ub.Rule.Len()
		K  = len(ub.Elems)
	)
	if vb.Rule.Len() != nq || len(vb.Elems) != K {
		panic(fmt.Errorf("trial and test bases differ: %d/%d quadrature points, %d/%d elements",
			nq, vb.Rule.Len(), K, len(vb.Elems)))
	}
	var (
		nu    = ub.NumBasis()
		nv    = vb.NumBasis()
		pairs = nu * nv
		w     = ub.fieldSet(extra)
	)
	A = COOMatrix{
		Rows:  make([]int, pairs*K),
		Cols:  make([]int, pairs*K),
		Data:  make([]float64, pairs*K),
		Shape: [2]int{vb.N, ub.N},
	}
	fill := func(lo, hi int) {
		for ij := lo; ij < hi; ij++ {
			var (
				i         = ij % nv
				j         = ij / nv
				integrand = bf.Kernel(ub.Field(j), vb.Field(i), w)
				off       = ij * K
			)
			checkIntegrand(integrand, nq, K)
			for k := 0; k < K; k++ {
				var sum float64
				for q := 0; q < nq; q++ {
					sum += integrand.At(q, k) * ub.DX.At(q, k)
				}
				A.Rows[off+k] = vb.ElementDofs[i][k]
				A.Cols[off+k] = ub.ElementDofs[j][k]
				A.Data[off+k] = sum
			}
		}
	}
	runPartitioned(bf.NThreads, pairs, fill)
	return
}

/*
LinearForm assembles a right-hand-side kernel over a test basis. The
threading model matches BilinearForm over the flat test-function index.
*/
type LinearForm struct {
	Kernel   LinearKernel
	NThreads int
}

func (lf *LinearForm) Assemble(vb *Basis, extra map[string]*DiscreteField) (V COOVector) {
	var (
		nq = vb.Rule.Len()
		K  = len(vb.Elems)
		nv = vb.NumBasis()
		w  = vb.fieldSet(extra)
	)
	V = COOVector{
		Rows: make([]int, nv*K),
		Data: make([]float64, nv*K),
		N:    vb.N,
	}
	fill := func(lo, hi int) {
		for i := lo; i < hi; i++ {
			var (
				integrand = lf.Kernel(vb.Field(i), w)
				off       = i * K
			)
			checkIntegrand(integrand, nq, K)
			for k := 0; k < K; k++ {
				var sum float64
				for q := 0; q < nq; q++ {
					sum += integrand.At(q, k) * vb.DX.At(q, k)
				}
				V.Rows[off+k] = vb.ElementDofs[i][k]
				V.Data[off+k] = sum
			}
		}
	}
	runPartitioned(lf.NThreads, nv, fill)
	return
}

func checkIntegrand(m utils.Matrix, nq, K int) {
	nr, nc := m.Dims()
	if nr != nq || nc != K {
		panic(fmt.Errorf("kernel returned %dx%d, want %dx%d", nr, nc, nq, K))
	}
}

// runPartitioned applies fill over [0, n), either inline or split into
// static per-goroutine buckets with at most one unit of imbalance.
func runPartitioned(nThreads, n int, fill func(lo, hi int)) {
	if nThreads <= 1 {
		fill(0, n)
		return
	}
	var (
		pm = utils.NewPartitionMap(nThreads, n)
		wg sync.WaitGroup
	)
	for np := 0; np < pm.ParallelDegree; np++ {
		wg.Add(1)
		go func(np int) {
			defer wg.Done()
			lo, hi := pm.GetBucketRange(np)
			fill(lo, hi)
		}(np)
	}
	wg.Wait()
}
