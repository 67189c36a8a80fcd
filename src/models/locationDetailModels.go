package models

type LocationDetailModel struct {
	Id      int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name    string `json:"name" gorm:"column:name;type:varchar(30);not null"`
	Address string `json:"address" gorm:"column:address;type:varchar(50);not null"`
	City    string `json:"city" gorm:"column:city;type:varchar(20);not null"`
}

func (LocationDetailModel) TableName() string {
	return "location_details"
}

func (l *LocationDetailModel) RecordID() int {
	return l.Id
}

func (l *LocationDetailModel) Values() map[string]string {
	return map[string]string{
		"name":    l.Name,
		"address": l.Address,
		"city":    l.City,
	}
}

// String returns the display name of the location detail
func (l *LocationDetailModel) String() string {
	return l.City
}

var LocationDetailSchema = Schema[*LocationDetailModel]{
	Kind:  KindLocationDetail,
	Title: "State details",
	Fields: []Field{
		{Name: "name", Label: "Name", MaxLength: 30},
		{Name: "address", Label: "Address", MaxLength: 50},
		{Name: "city", Label: "City", MaxLength: 20},
	},
	Build: func(values map[string]string) *LocationDetailModel {
		return &LocationDetailModel{
			Name:    values["name"],
			Address: values["address"],
			City:    values["city"],
		}
	},
}
