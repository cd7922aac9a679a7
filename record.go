package ngoscan

import "context"

// Record column names in the fixed output order.
const (
	ColumnName          = "NGO Name"
	ColumnWebsite       = "Website"
	ColumnAddress       = "Address"
	ColumnServices      = "Services Offered"
	ColumnContactPerson = "Contact Person"
	ColumnContactNumber = "Contact Number"
	ColumnSourcePages   = "Source Pages"
)

// ContactRecord is the extraction result for one organization. All
// fields are mandatory: a record is either fully populated or never
// produced. Records are immutable once returned by the builder.
type ContactRecord struct {
	Name          string
	Website       string
	Address       string
	Services      string
	ContactPerson string
	ContactNumber string
	SourcePages   string
}

// Columns returns the output column names in their fixed order.
func Columns() []string {
	return []string{
		ColumnName,
		ColumnWebsite,
		ColumnAddress,
		ColumnServices,
		ColumnContactPerson,
		ColumnContactNumber,
		ColumnSourcePages,
	}
}

// Row returns the record values in column order.
func (r *ContactRecord) Row() []string {
	return []string{
		r.Name,
		r.Website,
		r.Address,
		r.Services,
		r.ContactPerson,
		r.ContactNumber,
		r.SourcePages,
	}
}

// Validate returns an error if any record field is empty.
func (r *ContactRecord) Validate() error {
	cols := Columns()
	for i, v := range r.Row() {
		if v == "" {
			return Errorf(EINVALID, "record field %q required", cols[i])
		}
	}
	return nil
}

// RecordWriter persists an ordered sequence of contact records and
// returns the path of the written report.
type RecordWriter interface {
	WriteRecords(ctx context.Context, records []*ContactRecord) (path string, err error)
}
