package domain

// LogicalField identifies one of the fixed semantic slots a catalog
// column can map onto.
type LogicalField string

const (
	FieldAssembly     LogicalField = "assembly"
	FieldPartNumber   LogicalField = "part_number"
	FieldDescription  LogicalField = "description"
	FieldQuantity     LogicalField = "quantity_per_vehicle"
	FieldType         LogicalField = "type"
	FieldLineLocation LogicalField = "line_location"
	FieldPartStatus   LogicalField = "part_status"
	FieldBinType      LogicalField = "bin_type"
)

// AllFields returns every logical field in resolution order.
func AllFields() []LogicalField {
	return []LogicalField{
		FieldAssembly,
		FieldPartNumber,
		FieldDescription,
		FieldQuantity,
		FieldType,
		FieldLineLocation,
		FieldPartStatus,
		FieldBinType,
	}
}

// RequiredFields returns the fields a table must provide before any
// labels can be generated.
func RequiredFields() []LogicalField {
	return []LogicalField{FieldAssembly, FieldPartNumber, FieldDescription}
}

// Required reports whether the field must resolve to a real column.
func (f LogicalField) Required() bool {
	switch f {
	case FieldAssembly, FieldPartNumber, FieldDescription:
		return true
	}
	return false
}

// Label returns the human-readable name used in mapping tables and
// error messages.
func (f LogicalField) Label() string {
	switch f {
	case FieldAssembly:
		return "Assembly"
	case FieldPartNumber:
		return "Part No"
	case FieldDescription:
		return "Description"
	case FieldQuantity:
		return "Qty/Veh"
	case FieldType:
		return "Type"
	case FieldLineLocation:
		return "Line Location"
	case FieldPartStatus:
		return "Part Status"
	case FieldBinType:
		return "Bin Type"
	}
	return string(f)
}

// ParseField converts a config key like "bin_type" back into a logical
// field. Returns false for unknown names.
func ParseField(name string) (LogicalField, bool) {
	for _, f := range AllFields() {
		if string(f) == name {
			return f, true
		}
	}
	return "", false
}

// AliasTable maps each logical field to its candidate column names in
// priority order. Built once at startup and read-only afterwards.
type AliasTable map[LogicalField][]string

// DefaultAliases returns the built-in alias dictionary covering the
// header spellings seen in real part catalogs.
func DefaultAliases() AliasTable {
	return AliasTable{
		FieldAssembly: {
			"assly", "ASSY NAME", "Assy Name", "assy name", "assyname",
			"assy_name", "Assy_name", "Assembly", "Assembly Name", "ASSEMBLY", "Assembly_Name",
		},
		FieldPartNumber: {
			"PARTNO", "PARTNO.", "Part No", "Part Number", "PartNo",
			"partnumber", "part no", "partnum", "PART", "part", "Product Code",
			"Item Number", "Item ID", "Item No", "item", "Item",
		},
		FieldDescription: {
			"DESCRIPTION", "Description", "Desc", "Part Description",
			"ItemDescription", "item description", "Product Description",
			"Item Description", "NAME", "Item Name", "Product Name",
		},
		FieldQuantity: {
			"QYT", "QTY / VEH", "Qty/Veh", "Qty Bin", "Quantity per Bin",
			"qty bin", "qtybin", "quantity bin", "BIN QTY", "BINQTY",
			"QTY_BIN", "QTY_PER_BIN", "Bin Quantity", "BIN",
		},
		FieldType: {
			"TYPE", "type", "Type", "Type name",
		},
		FieldLineLocation: {
			"LINE LOCATION", "Line Location", "line location", "LINELOCATION",
			"linelocation", "Line_Location", "line_location", "LINE_LOCATION",
			"LineLocation", "line_loc", "lineloc", "LINELOC", "Line Loc",
		},
		FieldPartStatus: {
			"PART STATUS", "Part Status", "part status", "PARTSTATUS",
			"partstatus", "Part_Status", "part_status", "PART_STATUS",
			"PartStatus", "STATUS", "Status", "status", "Item Status",
			"Component Status", "Part State", "State",
		},
		FieldBinType: {
			"BIN TYPE", "Bin Type", "bin type", "BINTYPE", "bintype",
			"Bin_Type", "bin_type", "BIN_TYPE", "BinType", "Container Type",
			"CONTAINER TYPE", "Container_Type", "container_type", "CONTAINER_TYPE",
			"ContainerType", "CONTAINER", "Container", "container", "BIN", "Bin", "bin",
			"Package Type", "PACKAGE TYPE", "Package_Type", "package_type", "PACKAGE_TYPE",
			"PackageType", "Storage Type", "STORAGE TYPE", "Storage_Type", "storage_type",
		},
	}
}

// Extend returns a copy of the table with extra aliases appended after
// the built-in ones, preserving their lower matching priority.
func (t AliasTable) Extend(extra map[LogicalField][]string) AliasTable {
	merged := make(AliasTable, len(t))
	for f, names := range t {
		merged[f] = append([]string(nil), names...)
	}
	for f, names := range extra {
		merged[f] = append(merged[f], names...)
	}
	return merged
}
