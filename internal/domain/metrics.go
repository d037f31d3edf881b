package domain

// ITVExpiryWindowDays - ventana hacia delante para "ITV a punto de caducar"
const ITVExpiryWindowDays = 30

// DashboardMetrics - instantánea de salud de la flota
// Se recalcula en cada petición a partir del estado actual del almacén
type DashboardMetrics struct {
	TotalVans       int            `json:"totalVans"`
	ActivaVans      int            `json:"activaVans"`
	InactivaVans    int            `json:"inactivaVans"`
	VansWithAveria  int            `json:"vansWithAveria"`  // Flag AVERIA almacenado
	ITVExpiringVans int            `json:"itvExpiringVans"` // hoy <= FECHA_ITV <= hoy+30d
	ITVExpiredVans  int            `json:"itvExpiredVans"`  // FECHA_ITV < hoy
	VansInWorkshop  int            `json:"vansInWorkshop"`  // Averías sin fecha de salida
	CompanyCounts   map[string]int `json:"companyCounts"`
	TypeCounts      map[string]int `json:"typeCounts"`
}
