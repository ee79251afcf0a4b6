package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func terminator(name string, operands ...string) *Operation {
	return NewOp(name, "%t").WithOperands(operands...).AsTerminator().Build()
}

func TestValidateCleanModule(t *testing.T) {
	region := SingleBlockRegion(&Block{
		Args: []BlockArg{{Name: "%arg0", Type: I32}},
		Body: []*Operation{
			NewOp("arith.addi", "%0").
				WithOperands("%arg0", "%arg0").
				WithResults(Result{Name: "%0", Type: I32}).
				Build(),
		},
		Term: terminator("func.return", "%0"),
	})
	m := NewModule(NewOp("func.func", "%f").WithRegions(region).Build())

	assert.NoError(t, Validate(m))
}

func TestValidateDanglingOperand(t *testing.T) {
	region := SingleBlockRegion(&Block{
		Term: terminator("func.return", "%ghost"),
	})
	m := NewModule(NewOp("func.func", "%f").WithRegions(region).Build())

	err := Validate(m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "%ghost")
	assert.Contains(t, err.Error(), "not bound")
}

func TestValidateMissingTerminator(t *testing.T) {
	region := SingleBlockRegion(&Block{})
	m := NewModule(NewOp("func.func", "%f").WithRegions(region).Build())

	err := Validate(m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing terminator")
}

func TestValidateDuplicateBinding(t *testing.T) {
	region := SingleBlockRegion(&Block{
		Body: []*Operation{
			NewOp("arith.constant", "%0").WithResults(Result{Name: "%0", Type: I32}).Build(),
			NewOp("arith.constant", "%1").WithResults(Result{Name: "%0", Type: I32}).Build(),
		},
		Term: terminator("func.return"),
	})
	m := NewModule(NewOp("func.func", "%f").WithRegions(region).Build())

	err := Validate(m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate binding %0")
}

func TestValidateUnknownSuccessor(t *testing.T) {
	region := SingleBlockRegion(&Block{
		Term: NewOp("cf.br", "%t").AsTerminator().WithSuccessors("nowhere").Build(),
	})
	m := NewModule(NewOp("func.func", "%f").WithRegions(region).Build())

	err := Validate(m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "successor ^nowhere")
}

func TestValidateSuccessorsSeeAllLabels(t *testing.T) {
	// The entry terminator may reference a later block, and labeled
	// blocks may branch back to the implicit bb0.
	region := Region{
		Entry: &Block{Term: NewOp("cf.br", "%t0").AsTerminator().WithSuccessors("bb1").Build()},
		Blocks: []LabeledBlock{{
			Label: "bb1",
			Block: &Block{Term: NewOp("cf.br", "%t1").AsTerminator().WithSuccessors("bb0").Build()},
		}},
	}
	m := NewModule(NewOp("func.func", "%f").WithRegions(region).Build())

	assert.NoError(t, Validate(m))
}

func TestValidateDenseShapeDisagreements(t *testing.T) {
	tests := []struct {
		name string
		attr DenseAttr
		want string // substring of the finding; empty means clean
	}{
		{
			"matching",
			DenseAttr{
				Shape:  TensorType{Dims: []Dim{StaticDim(2), StaticDim(2)}, Elem: F64},
				Values: Elems(Floats(1, 2), Floats(3, 4)),
			},
			"",
		},
		{
			"dynamic_dim_matches_any_length",
			DenseAttr{
				Shape:  TensorType{Dims: []Dim{DynamicDim()}, Elem: F32},
				Values: Floats(1, 2, 3, 4, 5),
			},
			"",
		},
		{
			"wrong_length",
			DenseAttr{
				Shape:  TensorType{Dims: []Dim{StaticDim(3)}, Elem: F64},
				Values: Floats(1, 2),
			},
			"payload has 2 elements where the shape declares 3",
		},
		{
			"scalar_for_ranked",
			DenseAttr{
				Shape:  TensorType{Dims: []Dim{StaticDim(1)}, Elem: F64},
				Values: DenseFloat(1),
			},
			"scalar where the shape expects rank 1",
		},
		{
			"too_deep",
			DenseAttr{
				Shape:  TensorType{Dims: []Dim{StaticDim(1)}, Elem: F64},
				Values: Elems(Floats(1)),
			},
			"nests deeper",
		},
		{
			"unranked_shape_unchecked",
			DenseAttr{
				Shape:  UnrankedTensorType{Elem: F64},
				Values: Floats(1, 2, 3),
			},
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModule(
				NewOp("arith.constant", "%0").
					WithAttrs(map[string]Attr{"value": tt.attr}).
					Build(),
			)
			err := Validate(m)
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateAggregatesFindings(t *testing.T) {
	region := SingleBlockRegion(&Block{
		Body: []*Operation{
			NewOp("test.use", "%0").WithOperands("%a").Build(),
			NewOp("test.use", "%1").WithOperands("%b").Build(),
		},
	})
	m := NewModule(NewOp("func.func", "%f").WithRegions(region).Build())

	err := Validate(m)
	require.Error(t, err)
	// Two dangling operands plus the missing terminator.
	assert.Len(t, multierr.Errors(err), 3)
}
