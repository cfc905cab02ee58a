package model

type Setting struct {
	Key   string `json:"key" gorm:"primaryKey;size:64"`
	Value string `json:"value" gorm:"type:text"`
	Desc  string `json:"desc" gorm:"size:255"`
}
