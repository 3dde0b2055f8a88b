package domain

// FreeSlots вычитает занятые диапазоны из окна доступности
// и возвращает упорядоченный список свободных промежутков.
//
// Алгоритм - один проход слева направо, O(n):
//  1. Курсор ставится на начало окна.
//  2. Для каждого занятого диапазона (в порядке возрастания начала):
//     если курсор левее начала диапазона - промежуток [курсор, начало) свободен;
//     курсор сдвигается на max(курсор, конец диапазона), поэтому пересекающиеся
//     и вложенные диапазоны схлопываются, а курсор никогда не откатывается.
//  3. Остаток [курсор, конец окна) свободен.
//
// Диапазоны целиком за пределами окна на результат не влияют: слева от окна
// курсор не откатывается, справа - эмиссия обрезается по концу окна.
//
// Предусловие: booked отсортирован по возрастанию времени начала.
// Сортировку гарантирует репозиторий событий (ORDER BY start_time ASC).
func FreeSlots(window TimeRange, booked []TimeRange) []TimeRange {
	free := make([]TimeRange, 0, len(booked)+1)

	cursor := window.Start
	for _, b := range booked {
		if !cursor.Before(window.End) {
			break
		}
		if cursor.Before(b.Start) {
			end := b.Start
			if end.After(window.End) {
				end = window.End
			}
			free = append(free, TimeRange{Start: cursor, End: end})
		}
		if b.End.After(cursor) {
			cursor = b.End
		}
	}

	if cursor.Before(window.End) {
		free = append(free, TimeRange{Start: cursor, End: window.End})
	}

	return free
}
