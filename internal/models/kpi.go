package models

type KPIs struct {
	Effort       int     `json:"effort"`
	Relationship int     `json:"relationship"`
	ROI          int     `json:"roi"`
	IEG          float64 `json:"ieg"`
	Sales        int     `json:"sales"`
	Reservations int     `json:"reservations"`
}

type ManagerKPIs struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Avatar *string `json:"avatar"`
	Role   Role    `json:"role"`
	KPIs   KPIs    `json:"kpis"`
}
