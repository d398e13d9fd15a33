package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	// Для точечных выборок это нормальный (не исключительный) исход.
	ErrNotFound = errors.New("record not found")

	// ErrValidation используется для ошибок валидации входных данных.
	ErrValidation = errors.New("validation failed")

	// ErrConflict используется для конфликтов уникальности
	// (например, повторная регистрация того же wallet-адреса).
	ErrConflict = errors.New("resource conflict")
)
