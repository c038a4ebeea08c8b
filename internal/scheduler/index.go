package scheduler

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// bookingIndex отсортированный по началу список занятых интервалов одного дня
// maxEnd[i] - максимальный конец среди первых i+1 интервалов, что позволяет
// проверить конфликт бинарным поиском вместо полного перебора
type bookingIndex struct {
	starts []time.Time
	maxEnd []time.Time
}

func newBookingIndex(busy []domain.Interval) bookingIndex {
	sorted := make([]domain.Interval, len(busy))
	copy(sorted, busy)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	idx := bookingIndex{
		starts: make([]time.Time, len(sorted)),
		maxEnd: make([]time.Time, len(sorted)),
	}

	for i, b := range sorted {
		idx.starts[i] = b.Start
		idx.maxEnd[i] = b.End
		if i > 0 && idx.maxEnd[i-1].After(b.End) {
			idx.maxEnd[i] = idx.maxEnd[i-1]
		}
	}

	return idx
}

// conflicts сообщает, пересекается ли candidate хотя бы с одним интервалом
// Эквивалентно перебору с domain.Overlaps: ищем интервалы с Start < candidate.End
// и проверяем, заканчивается ли хотя бы один из них позже candidate.Start
func (idx bookingIndex) conflicts(candidate domain.Interval) bool {
	n := sort.Search(len(idx.starts), func(i int) bool {
		return !idx.starts[i].Before(candidate.End)
	})
	if n == 0 {
		return false
	}
	return idx.maxEnd[n-1].After(candidate.Start)
}
