package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/den/internal/core/domain"
)

func TestPlan_StepsKeepInsertionOrder(t *testing.T) {
	p := domain.NewPlan("/envs/work")
	p.Add(domain.OpLink, "zlib-1.2.8-0")
	p.Add(domain.OpLink, "readline-6.2-2")
	p.Add(domain.OpFetch, "readline-6.2-2")

	assert.Equal(t, []domain.Dist{"zlib-1.2.8-0", "readline-6.2-2"}, p.Steps(domain.OpLink))
	assert.Equal(t, []domain.Dist{"readline-6.2-2"}, p.Steps(domain.OpFetch))
	assert.Nil(t, p.Steps(domain.OpUnlink))
}

func TestPlan_SizeAndEmpty(t *testing.T) {
	p := domain.NewPlan("/envs/work")
	assert.True(t, p.Empty())
	assert.Equal(t, 0, p.Size())

	p.Add(domain.OpFetch, "zlib-1.2.8-0")
	p.Add(domain.OpExtract, "zlib-1.2.8-0")
	assert.False(t, p.Empty())
	assert.Equal(t, 2, p.Size())
}

func TestPlan_StringFollowsExecutionOrder(t *testing.T) {
	// Steps added out of order must still render in phase order, with
	// unlinks ahead of links.
	p := domain.NewPlan("/envs/work")
	p.Add(domain.OpLink, "zlib-1.2.9-0")
	p.Add(domain.OpUnlink, "zlib-1.2.8-0")
	p.Add(domain.OpExtract, "zlib-1.2.9-0")
	p.Add(domain.OpFetch, "zlib-1.2.9-0")
	p.Add(domain.OpRemoveExtracted, "zlib-1.2.9-0")
	p.Add(domain.OpRemoveFetched, "zlib-1.2.9-0")

	want := "RM_FETCHED zlib-1.2.9-0\n" +
		"FETCH zlib-1.2.9-0\n" +
		"RM_EXTRACTED zlib-1.2.9-0\n" +
		"EXTRACT zlib-1.2.9-0\n" +
		"UNLINK zlib-1.2.8-0\n" +
		"LINK zlib-1.2.9-0\n"
	assert.Equal(t, want, p.String())
}

func TestOpOrder_UnlinkPrecedesLink(t *testing.T) {
	unlinkAt, linkAt := -1, -1
	for i, kind := range domain.OpOrder {
		switch kind {
		case domain.OpUnlink:
			unlinkAt = i
		case domain.OpLink:
			linkAt = i
		}
	}
	assert.GreaterOrEqual(t, unlinkAt, 0)
	assert.Greater(t, linkAt, unlinkAt)
}
