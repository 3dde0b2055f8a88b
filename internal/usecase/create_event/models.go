package create_event

import "time"

// Request модель запроса на создание события
type Request struct {
	HostID     int64     // ID организатора
	StartTime  time.Time // Начало события (UTC)
	EndTime    time.Time // Конец события (UTC)
	Attendees  []int64   // ID зарегистрированных участников
	GuestEmail *string   // Email гостя (опционально); для гостя создается пользователь
}

// Response модель ответа с созданным событием
type Response struct {
	ID        int64     // ID созданного события
	HostID    int64     // ID организатора
	StartTime time.Time // Начало события
	EndTime   time.Time // Конец события
	Status    string    // Статус события
	Attendees []int64   // Итоговый список участников (включая организатора и гостя)
	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
