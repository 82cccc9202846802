package overflow

import (
	"fmt"

	"github.com/gostonefire/patientstore/errs"
	"github.com/gostonefire/patientstore/internal/model"
)

// Chain - Is used to iterate over the overflow entries of a bucket one by one.
type Chain struct {
	getOvflFunc func(int64) (model.IndexEntry, error)
	overflowNo  int64
}

// NewChain - Returns a pointer to a new Chain starting at overflowNo, where 0 means an empty chain
func NewChain(getOvflFunc func(int64) (model.IndexEntry, error), overflowNo int64) *Chain {

	return &Chain{
		getOvflFunc: getOvflFunc,
		overflowNo:  overflowNo,
	}
}

// HasNext - Returns true if there are more entries to be fetched from a call to Next.
func (C *Chain) HasNext() bool {
	return C.overflowNo != 0
}

// Next - Returns the next entry in the chain.
// It returns:
//   - overflowNo is the 1-based overflow number of the returned entry.
//   - entry is the next overflow entry.
//   - err is either an error from the overflow getter or, if there are no more entries when calling this function, an errs.Error with code NotFound.
func (C *Chain) Next() (overflowNo int64, entry model.IndexEntry, err error) {
	if C.overflowNo == 0 {
		err = errs.New(errs.CodeNotFound, "no more entries in chain")
		return
	}

	entry, err = C.getOvflFunc(C.overflowNo)
	if err != nil {
		err = fmt.Errorf("error while retrieving entry from overflow area: %w", err)
		return
	}

	overflowNo = C.overflowNo
	C.overflowNo = entry.Next

	return
}
