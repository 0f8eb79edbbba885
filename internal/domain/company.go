package domain

// Company is a static carrier profile served by the reference catalog.
type Company struct {
	Domain        string  `json:"domain"`
	Hub           string  `json:"hub"`
	BhopalAddress string  `json:"bhopal_address"`
	CareNumber    string  `json:"care_number"`
	Safety        float64 `json:"safety"`
	Speed         float64 `json:"speed"`
	Cost          float64 `json:"cost"`
	Reviews       float64 `json:"reviews"`
}
