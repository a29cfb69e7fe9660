package service

import "errors"

// Доменные ошибки диспетчеризации. Хэндлеры различают их через errors.Is
// и транслируют в HTTP статусы; сервис никогда не скрывает конфликт
// повторной попыткой.
var (
	// ErrIncidentNotFound - инцидент не существует
	ErrIncidentNotFound = errors.New("incident not found")

	// ErrUnitNotFound - юнит не существует
	ErrUnitNotFound = errors.New("responder unit not found")

	// ErrUnitNotAvailable - юнит уже занят; конкурентное назначение
	// проиграно, диспетчер должен выбрать другой юнит
	ErrUnitNotAvailable = errors.New("responder unit is not available")

	// ErrInvalidState - операция недопустима в текущем статусе инцидента
	ErrInvalidState = errors.New("operation is not valid for current incident state")

	// ErrNotAssignedUnit - действующий юнит не является назначенным на инцидент
	ErrNotAssignedUnit = errors.New("unit is not assigned to this incident")

	// ErrAgencyMismatch - юнит не принадлежит указанному агентству
	ErrAgencyMismatch = errors.New("unit does not belong to the given agency")

	// ErrAssignContended - блокировка юнита не получена за отведенное время;
	// временная ошибка, запрос можно повторить позже
	ErrAssignContended = errors.New("assignment lock contended, try again")

	// ErrNoCandidates - для автоназначения не нашлось ни одного юнита
	ErrNoCandidates = errors.New("no dispatch candidates found")
)
