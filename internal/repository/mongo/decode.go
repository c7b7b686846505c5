package mongo

import (
	"strconv"
	"strings"
	"time"

	"charting-dashboard-server/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// recordDocument mirrors a visit document as the charting app writes it. Fields
// whose type varies between app versions are kept raw and normalized here.
type recordDocument struct {
	ID          bson.RawValue `bson:"_id"`
	HospitalID  string        `bson:"hospitalId"`
	PatientID   bson.RawValue `bson:"patientId"`
	PatientName string        `bson:"patientName"`
	Gender      string        `bson:"patientGender"`
	Age         bson.RawValue `bson:"patientAge"`
	CreatedAt   bson.RawValue `bson:"createdAt"`
	Diagnosis   string        `bson:"diagnosis"`
	Duration    string        `bson:"duration"`
	Status      string        `bson:"status"`
}

type patientDocument struct {
	ID         bson.RawValue `bson:"_id"`
	HospitalID string        `bson:"hospitalId"`
	Name       string        `bson:"name"`
	Gender     string        `bson:"gender"`
	Age        bson.RawValue `bson:"age"`
	BirthDate  bson.RawValue `bson:"birthDate"`
}

func (d recordDocument) toModel() models.VisitRecord {
	status := models.VisitStatus(d.Status)
	if status == "" {
		status = models.VisitStatusCompleted
	}
	return models.VisitRecord{
		ID:            rawString(d.ID),
		HospitalID:    d.HospitalID,
		PatientID:     rawString(d.PatientID),
		PatientName:   strings.TrimSpace(d.PatientName),
		PatientGender: d.Gender,
		PatientAge:    rawString(d.Age),
		CreatedAt:     rawTimestamp(d.CreatedAt),
		Diagnosis:     d.Diagnosis,
		Duration:      d.Duration,
		Status:        status,
	}
}

func (d patientDocument) toModel() models.Patient {
	p := models.Patient{
		ID:         rawString(d.ID),
		HospitalID: d.HospitalID,
		Name:       strings.TrimSpace(d.Name),
		Gender:     d.Gender,
		Age:        rawString(d.Age),
	}
	if ts := rawTimestamp(d.BirthDate); ts.Valid() {
		if t, ok := ts.In(time.UTC); ok {
			p.BirthDate = &t
		}
	}
	return p
}

// rawTimestamp normalizes the stored creation time into the one Timestamp
// representation: BSON datetimes and numbers are epoch millis, strings are ISO.
func rawTimestamp(v bson.RawValue) models.Timestamp {
	switch v.Type {
	case bsontype.DateTime:
		if ms, ok := v.DateTimeOK(); ok {
			return models.TimestampFromEpochMillis(ms)
		}
	case bsontype.String:
		if s, ok := v.StringValueOK(); ok {
			return models.TimestampFromISO(s)
		}
	case bsontype.Int64:
		if ms, ok := v.Int64OK(); ok {
			return models.TimestampFromEpochMillis(ms)
		}
	case bsontype.Int32:
		if ms, ok := v.Int32OK(); ok {
			return models.TimestampFromEpochMillis(int64(ms))
		}
	case bsontype.Double:
		if ms, ok := v.DoubleOK(); ok {
			return models.TimestampFromEpochMillis(int64(ms))
		}
	case bsontype.Timestamp:
		if sec, _, ok := v.TimestampOK(); ok {
			return models.TimestampFromEpochMillis(int64(sec) * 1000)
		}
	case bsontype.EmbeddedDocument:
		// {seconds, nanoseconds} as exported from the previous store
		var fs struct {
			Seconds     int64 `bson:"seconds"`
			Nanoseconds int64 `bson:"nanoseconds"`
		}
		if err := v.Unmarshal(&fs); err == nil && fs.Seconds != 0 {
			return models.TimestampFromEpochMillis(fs.Seconds*1000 + fs.Nanoseconds/1e6)
		}
	}
	return models.Timestamp{}
}

func rawString(v bson.RawValue) string {
	switch v.Type {
	case bsontype.String:
		s, _ := v.StringValueOK()
		return s
	case bsontype.ObjectID:
		if oid, ok := v.ObjectIDOK(); ok {
			return oid.Hex()
		}
	case bsontype.Int32:
		n, _ := v.Int32OK()
		return strconv.Itoa(int(n))
	case bsontype.Int64:
		n, _ := v.Int64OK()
		return strconv.FormatInt(n, 10)
	case bsontype.Double:
		f, _ := v.DoubleOK()
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return ""
}
