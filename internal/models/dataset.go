package models

// DatasetItem — одна запись каталога OSDR после разворачивания словарной формы.
// DatasetID может отличаться от ID: одна строка апстрима со словарем в raw
// разворачивается в несколько записей с общими полями строки.
type DatasetItem struct {
	ID         string      `json:"id"`
	DatasetID  string      `json:"dataset_id"`
	Title      *string     `json:"title"`
	Status     string      `json:"status"`
	UpdatedAt  *string     `json:"updated_at"`
	InsertedAt *string     `json:"inserted_at"`
	RestURL    *string     `json:"rest_url"`
	Raw        interface{} `json:"raw"`
}
