package domain

import "time"

// DateLayout - formato de las fechas de calendario en la API (sin hora)
const DateLayout = "2006-01-02"

// ParseDate convierte una fecha "YYYY-MM-DD" en time.Time
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, ErrInvalidFecha
	}
	return t, nil
}

// Today devuelve el instante truncado a día, en la zona horaria dada
// Las comparaciones de ventanas ITV se hacen con precisión de día
func Today(now time.Time) time.Time {
	return DateIn(now, now.Location())
}

// DateIn reinterpreta la fecha de calendario de t (su año, mes y día)
// como medianoche en la zona indicada. Permite comparar una fecha DATE
// del almacén (medianoche UTC) con el "hoy" local sin que el desfase
// horario mueva el día
func DateIn(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
