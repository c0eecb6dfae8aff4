package i18ntree

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tree decodes compact JSON test fixtures into a Node, keeping key order.
func tree(t *testing.T, src string) *Node {
	t.Helper()
	dec := json.NewDecoder(stringsReader(src))
	n, err := decodeTestJSON(dec)
	require.NoError(t, err, src)
	return n
}

func TestReorder(t *testing.T) {
	t.Run("Reorder_FillsMissingBlank", func(t *testing.T) {
		ref := tree(t, `{"greeting":"Hi","farewell":"Bye"}`)
		tgt := tree(t, `{"greeting":"Salut"}`)

		merged, report := Reorder(ref, tgt, MissingBlank)
		assert.Equal(t, `{"greeting":"Salut","farewell":""}`, merged.String())
		assert.Equal(t, []string{"farewell"}, report.Missing)
		assert.Empty(t, report.Extra)
	})

	t.Run("Reorder_KeepsExtraKeys", func(t *testing.T) {
		ref := tree(t, `{"a":1}`)
		tgt := tree(t, `{"a":1,"b":2}`)

		merged, report := Reorder(ref, tgt, MissingBlank)
		assert.Equal(t, `{"a":1,"b":2}`, merged.String())
		assert.Empty(t, report.Missing)
		assert.Equal(t, []string{"b"}, report.Extra)
	})

	t.Run("Reorder_ReferenceOrderFirst", func(t *testing.T) {
		ref := tree(t, `{"a":"A","b":{"x":"X","y":"Y"},"c":"C"}`)
		tgt := tree(t, `{"z":"Z","c":"c","b":{"y":"y","w":"w","x":"x"},"a":"a"}`)

		merged, report := Reorder(ref, tgt, MissingBlank)
		assert.Equal(t, `{"a":"a","b":{"x":"x","y":"y","w":"w"},"c":"c","z":"Z"}`, merged.String())
		assert.Empty(t, report.Missing)
		assert.Equal(t, []string{"b.w", "z"}, report.Extra)
	})

	t.Run("Reorder_TargetLeafNeverOverwritten", func(t *testing.T) {
		ref := tree(t, `{"n":"text","b":true,"x":"ref"}`)
		tgt := tree(t, `{"n":42,"b":"no","x":null}`)

		for _, policy := range []MissingPolicy{MissingBlank, MissingNull, MissingRef} {
			merged, report := Reorder(ref, tgt, policy)
			assert.Equal(t, `{"n":42,"b":"no","x":null}`, merged.String(), policy.String())
			assert.True(t, report.Empty(), policy.String())
		}
	})

	t.Run("Reorder_MissingSubtreePolicies", func(t *testing.T) {
		ref := tree(t, `{"menu":{"open":"Open","items":["One",{"label":"Two"}],"count":3}}`)
		tgt := tree(t, `{}`)

		blank, report := Reorder(ref, tgt, MissingBlank)
		assert.Equal(t, `{"menu":{"open":"","items":["",{"label":""}],"count":""}}`, blank.String())
		assert.Equal(t, []string{"menu"}, report.Missing)

		null, _ := Reorder(ref, tgt, MissingNull)
		assert.Equal(t, `{"menu":{"open":null,"items":[null,{"label":null}],"count":null}}`, null.String())

		copied, _ := Reorder(ref, tgt, MissingRef)
		assert.True(t, copied.Equal(ref))
	})

	t.Run("Reorder_Arrays", func(t *testing.T) {
		ref := tree(t, `{"list":["a",{"k":"K"},"c"]}`)
		tgt := tree(t, `{"list":["A",{"j":"J"}]}`)

		merged, report := Reorder(ref, tgt, MissingRef)
		assert.Equal(t, `{"list":["A",{"k":"K","j":"J"},"c"]}`, merged.String())
		assert.Equal(t, []string{"list[1].k", "list[2]"}, report.Missing)
		assert.Equal(t, []string{"list[1].j"}, report.Extra)
	})

	t.Run("Reorder_ArrayExtraElements", func(t *testing.T) {
		ref := tree(t, `{"list":["a"]}`)
		tgt := tree(t, `{"list":["A","B",{"c":"C"}]}`)

		merged, report := Reorder(ref, tgt, MissingBlank)
		assert.Equal(t, `{"list":["A","B",{"c":"C"}]}`, merged.String())
		assert.Equal(t, []string{"list[1]", "list[2]"}, report.Extra)
	})

	t.Run("Reorder_HolesAreMissing", func(t *testing.T) {
		ref := tree(t, `{"list":["a","b"]}`)
		tgt := NewObject()
		require.NoError(t, SetDeep(tgt, "list[1]", "B"))

		merged, report := Reorder(ref, tgt, MissingBlank)
		assert.Equal(t, `{"list":["","B"]}`, merged.String())
		assert.Equal(t, []string{"list[0]"}, report.Missing)
	})

	t.Run("Reorder_ShapeMismatchFollowsReference", func(t *testing.T) {
		ref := tree(t, `{"a":{"b":"B"},"l":["x"]}`)
		tgt := tree(t, `{"a":"flat","l":{"0":"y"}}`)

		merged, report := Reorder(ref, tgt, MissingBlank)
		assert.Equal(t, `{"a":{"b":""},"l":[""]}`, merged.String())
		assert.Equal(t, []string{"a.b", "l[0]"}, report.Missing)
	})

	t.Run("Reorder_RootLeaf", func(t *testing.T) {
		merged, report := Reorder(NewLeaf("ref"), nil, MissingRef)
		assert.Equal(t, "ref", merged.Value())
		assert.Equal(t, []string{RootPath}, report.Missing)

		merged, report = Reorder(NewLeaf("ref"), NewLeaf(1), MissingRef)
		assert.Equal(t, 1, merged.Value())
		assert.True(t, report.Empty())
	})
}

func TestReorder_DoesNotMutateInputs(t *testing.T) {
	ref := tree(t, `{"a":{"b":"B"},"c":["x","y"]}`)
	tgt := tree(t, `{"c":["X"],"d":"D"}`)
	refCopy, tgtCopy := ref.Clone(), tgt.Clone()

	merged, _ := Reorder(ref, tgt, MissingRef)
	require.NoError(t, SetDeep(merged, "c[0]", "changed"))
	require.NoError(t, SetDeep(merged, "a.b", "changed"))

	assert.True(t, ref.Equal(refCopy))
	assert.True(t, tgt.Equal(tgtCopy))
}

func TestReorder_Idempotent(t *testing.T) {
	cases := []struct{ ref, tgt string }{
		{`{"greeting":"Hi","farewell":"Bye"}`, `{"greeting":"Salut"}`},
		{`{"a":1}`, `{"a":1,"b":2}`},
		{`{"a":{"b":"B"},"l":["x",{"y":"Y"}]}`, `{"l":[{"q":1}],"z":[1,2],"a":"flat"}`},
		{`{"list":["a"]}`, `{"list":["A","B",{"c":"C"}]}`},
		{`{"x":{"y":{"z":"Z"}},"w":[]}`, `{"w":["extra"],"x":{"y":{}}}`},
	}
	for _, tc := range cases {
		for _, policy := range []MissingPolicy{MissingBlank, MissingNull, MissingRef} {
			ref, tgt := tree(t, tc.ref), tree(t, tc.tgt)

			once, first := Reorder(ref, tgt, policy)
			twice, second := Reorder(ref, once, policy)

			assert.True(t, once.Equal(twice), "%s / %s (%s): %s != %s", tc.ref, tc.tgt, policy, once, twice)
			assert.Empty(t, second.Missing, "%s / %s (%s)", tc.ref, tc.tgt, policy)
			assert.ElementsMatch(t, first.Extra, second.Extra, "%s / %s (%s)", tc.ref, tc.tgt, policy)
		}
	}
}

func TestParseMissingPolicy(t *testing.T) {
	for in, want := range map[string]MissingPolicy{
		"blank": MissingBlank, "": MissingBlank, "NULL": MissingNull, "none": MissingNull, " ref ": MissingRef,
	} {
		got, err := ParseMissingPolicy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseMissingPolicy("copy")
	assert.Error(t, err)

	var p MissingPolicy
	require.NoError(t, p.Set("ref"))
	assert.Equal(t, MissingRef, p)
	assert.Equal(t, "ref", p.String())
	assert.Equal(t, "policy", p.Type())

	require.NoError(t, p.UnmarshalText([]byte("null")))
	assert.Equal(t, MissingNull, p)
	assert.Error(t, p.UnmarshalText([]byte("copy")))
}
