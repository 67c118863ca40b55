package domain

// CompactTicketIDs returns the non-zero ids in their original order.
// The result never shares storage with ids.
func CompactTicketIDs(ids []TicketTypeID) []TicketTypeID {
	out := make([]TicketTypeID, 0, len(ids))
	for _, id := range ids {
		if id != 0 {
			out = append(out, id)
		}
	}

	return out
}
