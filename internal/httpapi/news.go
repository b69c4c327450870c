package httpapi

import "dealerd/pkg/types"

// defaultNews is the seeded news & events feed, served when the caller wires
// no feed of its own.
var defaultNews = []types.NewsItem{
	{ID: 1, Title: "EV awareness drive in Bahawalnagar", Date: "2025-08-01", Img: "https://images.unsplash.com/photo-1500530855697-b586d89ba3ee?w=1200"},
	{ID: 2, Title: "New financing partner announced", Date: "2025-07-20", Img: "https://images.unsplash.com/photo-1465447142348-e9952c393450?w=1200"},
	{ID: 3, Title: "Free checkup camp — this month", Date: "2025-06-15", Img: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=1200"},
}
