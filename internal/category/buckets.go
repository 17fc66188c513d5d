package category

// Bucket is one of the coarse groups used by trend and breakdown charts.
type Bucket string

const (
	BucketHousing        Bucket = "Housing"
	BucketFood           Bucket = "Food"
	BucketTransportation Bucket = "Transportation"
	BucketUtilities      Bucket = "Utilities"
	BucketEntertainment  Bucket = "Entertainment"
	BucketShopping       Bucket = "Shopping"
	BucketOther          Bucket = "Other"
)

// Buckets lists chart buckets in legend order; Other is always last.
var Buckets = []Bucket{
	BucketHousing, BucketFood, BucketTransportation, BucketUtilities,
	BucketEntertainment, BucketShopping, BucketOther,
}

var bucketOf = map[Category]Bucket{
	Housing:        BucketHousing,
	FoodAndDining:  BucketFood,
	Transportation: BucketTransportation,
	Utilities:      BucketUtilities,
	Entertainment:  BucketEntertainment,
	Shopping:       BucketShopping,
}

// ChartBucket maps any category string to its chart bucket. Unrecognised and
// custom categories land in Other.
func ChartBucket(raw string) Bucket {
	c, ok := byKey[fold(raw)]
	if !ok {
		return BucketOther
	}
	if b, ok := bucketOf[c]; ok {
		return b
	}
	return BucketOther
}
