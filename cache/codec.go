package cache

/*
TableEncodeDecoder is an interface for objects that allow encoding
tables into slices of bytes and decoding them back to tables. Backend
stores use it to serialize tables into a representation they can keep.
*/
type TableEncodeDecoder interface {

	//Encode receives a *cache.Table
	//and returns a slice of bytes with the table encoded
	//or an error if the encoding could not be performed
	//for some reason.
	Encode(*Table) ([]byte, error)

	//Decode receives a slice of bytes
	//and returns a *cache.Table decoded from the
	//slice of bytes or an error if the decoding
	//could not be performed for some reason.
	Decode([]byte) (*Table, error)
}
