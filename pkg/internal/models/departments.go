package models

// Department is reference data maintained by HR imports, keyed by the
// same free-form name respondents put into their submission metadata.
type Department struct {
	Name      string `json:"name" gorm:"primaryKey"`
	Headcount int    `json:"headcount"`
}
