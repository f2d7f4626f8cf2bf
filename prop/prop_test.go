package prop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBag_DefaultsAndAssignment(t *testing.T) {
	weight := Declare[int64]("prop_test.weight", 0)

	b := NewBag()
	assert.Equal(t, int64(0), Get(b, weight), "unset property reads its declared default")
	assert.False(t, IsSet(b, weight))

	Set(b, weight, 42)
	assert.Equal(t, int64(42), Get(b, weight))
	assert.True(t, IsSet(b, weight))

	Unset(b, weight)
	assert.Equal(t, int64(0), Get(b, weight))
}

func TestBag_CloneIsIndependent(t *testing.T) {
	label := Declare[string]("prop_test.label", "")
	b := NewBag()
	Set(b, label, "a")

	clone := b.Clone()
	Set(clone, label, "b")

	assert.Equal(t, "a", Get(b, label))
	assert.Equal(t, "b", Get(clone, label))
}

func TestMap_BagIsLiveAndIndependentPerDescriptor(t *testing.T) {
	weight := Declare[int64]("prop_test.map.weight", 0)
	m := NewMap[string]()

	Set(m.Bag("A"), weight, 10)
	Set(m.Bag("B"), weight, 20)

	assert.Equal(t, int64(10), Get(m.Bag("A"), weight))
	assert.Equal(t, int64(20), Get(m.Bag("B"), weight))
	assert.Equal(t, int64(0), Get(m.Bag("C"), weight), "reading an unknown descriptor yields an all-defaults bag")
}

func TestComputedMap_DerivesWithoutStoring(t *testing.T) {
	doubled := Declare[int]("prop_test.doubled", 0)
	cm := NewComputedMap[int, int](doubled, func(v int) int { return v * 2 }, nil)

	assert.Equal(t, 10, cm.Value(5))
	assert.Equal(t, 10, Get(cm.Bag(5), doubled))
}

func TestCostFunc_ConstantAndFromProperty(t *testing.T) {
	weight := Declare[float64]("prop_test.cost.weight", 1)
	bags := NewMap[string]()
	Set(bags.Bag("e1"), weight, 7)

	c := Constant[string](3)
	assert.Equal(t, float64(3), c("anything"))

	fromProp := FromEdgeProperty(bags.Bag, weight)
	assert.Equal(t, float64(7), fromProp("e1"))
	assert.Equal(t, float64(1), fromProp("unknown"), "unset edges fall back to the declared default")

	require.NotNil(t, fromProp)
}
