package domain_test

import (
	"testing"

	"github.com/srgjo27/ticket_marketplace/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestCompactTicketIDs(t *testing.T) {
	cases := []struct {
		name string
		in   []domain.TicketTypeID
		want []domain.TicketTypeID
	}{
		{"nil", nil, []domain.TicketTypeID{}},
		{"empty", []domain.TicketTypeID{}, []domain.TicketTypeID{}},
		{"all zero", []domain.TicketTypeID{0, 0, 0}, []domain.TicketTypeID{}},
		{"leading zeros", []domain.TicketTypeID{0, 0, 0, 0, 1, 0}, []domain.TicketTypeID{1}},
		{"single trailing", []domain.TicketTypeID{0, 1}, []domain.TicketTypeID{1}},
		{"no zeros", []domain.TicketTypeID{3, 1, 2}, []domain.TicketTypeID{3, 1, 2}},
		{"interleaved", []domain.TicketTypeID{5, 0, 2, 0, 0, 9, 2}, []domain.TicketTypeID{5, 2, 9, 2}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := domain.CompactTicketIDs(tc.in)
			assert.Equal(t, tc.want, got)
			assert.NotContains(t, got, domain.TicketTypeID(0))
		})
	}
}

func TestCompactTicketIDs_Idempotent(t *testing.T) {
	in := []domain.TicketTypeID{0, 4, 0, 7, 7, 0, 1}

	once := domain.CompactTicketIDs(in)
	twice := domain.CompactTicketIDs(once)

	assert.Equal(t, once, twice)
}

func TestCompactTicketIDs_DoesNotAliasInput(t *testing.T) {
	in := []domain.TicketTypeID{1, 2, 3}

	out := domain.CompactTicketIDs(in)
	out[0] = 42

	assert.Equal(t, domain.TicketTypeID(1), in[0])
}
