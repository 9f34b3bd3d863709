package models

// Catalog field names as exposed through the API and stored in the database.
const (
	FieldName         = "name"
	FieldPublicPrice  = "public_price"
	FieldOrigin       = "origin"
	FieldProcessTime  = "process_time"
	FieldDeliveryTime = "delivery_time"
	FieldSampleType   = "sample_type"
	FieldTemperature  = "temperature"
)

// Field kinds for schema-driven form handling.
const (
	FieldKindEnum    = "enum"
	FieldKindNumber  = "number"
	FieldKindInteger = "integer"
	FieldKindBoolean = "boolean"
	FieldKindText    = "text"
)

// FieldSchema declares how one catalog field behaves: what kind of value it
// holds and, for enum fields, the official value list the cleanup compares
// against. Declared once, consumed by create, edit, and cleanup alike.
type FieldSchema struct {
	Name    string   `json:"name"`
	Kind    string   `json:"kind"`
	Options []string `json:"options,omitempty"`
}

// catalogSchema is the single source of truth for catalog field handling.
// The option lists are the laboratory's official vocabularies.
var catalogSchema = []FieldSchema{
	{Name: FieldName, Kind: FieldKindText},
	{Name: FieldPublicPrice, Kind: FieldKindNumber},
	{
		Name: FieldOrigin,
		Kind: FieldKindEnum,
		Options: []string{
			"Laboratorio Santa Fe",
			"Referencia (Maquila)",
			"Gabinete Externo",
		},
	},
	{
		Name: FieldSampleType,
		Kind: FieldKindEnum,
		Options: []string{
			"Suero",
			"Sangre Total (EDTA)",
			"Sangre Total (Heparina)",
			"Plasma (Citrato)",
			"Plasma (EDTA)",
			"Orina (Casual)",
			"Orina (24 Horas)",
			"Heces / Materia Fecal",
			"Exudado Faríngeo",
			"Exudado Vaginal / Uretral",
			"Esputo",
			"Otro",
		},
	},
	{
		Name: FieldTemperature,
		Kind: FieldKindEnum,
		Options: []string{
			"Ambiente",
			"Refrigerada (2-8°C)",
			"Congelada (-20°C)",
		},
	},
	{
		Name: FieldProcessTime,
		Kind: FieldKindEnum,
		Options: []string{
			"1 hora", "2 horas", "4 horas", "8 horas", "24 horas",
			"1 día", "2 días", "3 días", "5 días",
		},
	},
	{
		Name: FieldDeliveryTime,
		Kind: FieldKindEnum,
		Options: []string{
			"Mismo día",
			"Día siguiente (24h)",
			"2 días hábiles",
			"3 a 5 días hábiles",
			"1 semana",
		},
	},
}

// CatalogSchema returns the declared schema for every catalog field.
func CatalogSchema() []FieldSchema {
	out := make([]FieldSchema, len(catalogSchema))
	copy(out, catalogSchema)
	return out
}

// SchemaForField returns the schema entry for a field name.
func SchemaForField(name string) (FieldSchema, bool) {
	for _, fs := range catalogSchema {
		if fs.Name == name {
			return fs, true
		}
	}
	return FieldSchema{}, false
}

// OfficialOptions returns the official value list for an enum field.
// Non-enum and unknown fields return ok=false.
func OfficialOptions(field string) ([]string, bool) {
	fs, ok := SchemaForField(field)
	if !ok || fs.Kind != FieldKindEnum {
		return nil, false
	}
	options := make([]string, len(fs.Options))
	copy(options, fs.Options)
	return options, true
}

// CleanupFields lists the enum fields eligible for data cleanup.
func CleanupFields() []string {
	var fields []string
	for _, fs := range catalogSchema {
		if fs.Kind == FieldKindEnum {
			fields = append(fields, fs.Name)
		}
	}
	return fields
}
