package domain

import "errors"

var (
	// ErrMalformedIdentity — строка идентичности слота не декодируется
	// в ровно три поля. Отдается вызывающему как есть, молча не глотается
	ErrMalformedIdentity = errors.New("malformed slot identity")

	// ErrIdentityDelimiter — значение поля содержит разделитель идентичности,
	// такую тройку закодировать обратимо нельзя
	ErrIdentityDelimiter = errors.New("identity field contains delimiter")

	// ErrAlreadyBooked — повторное бронирование той же пары (slotId, userId)
	ErrAlreadyBooked = errors.New("slot is already booked")

	// ErrBookingNotFound — отмена несуществующего бронирования
	ErrBookingNotFound = errors.New("booking not found")
)
