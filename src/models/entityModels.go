package models

type EntityModel struct {
	Id          int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string `json:"title" gorm:"column:title;type:varchar(200);not null"`
	Description string `json:"description" gorm:"column:description;type:text;not null"`
}

func (EntityModel) TableName() string {
	return "entities"
}

func (e *EntityModel) RecordID() int {
	return e.Id
}

func (e *EntityModel) Values() map[string]string {
	return map[string]string{
		"title":       e.Title,
		"description": e.Description,
	}
}

// String returns the display name of the entity
func (e *EntityModel) String() string {
	return e.Title
}

var EntitySchema = Schema[*EntityModel]{
	Kind:  KindEntity,
	Title: "Entity",
	Fields: []Field{
		{Name: "title", Label: "Title", MaxLength: 200},
		{Name: "description", Label: "Description", Multiline: true},
	},
	Build: func(values map[string]string) *EntityModel {
		return &EntityModel{
			Title:       values["title"],
			Description: values["description"],
		}
	},
}
