package vvector

import (
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

// MetadataJson populates a json object with the vector's geometry: capacity,
// length, element size, and page accounting. Diagnostic output for humans
// and tests; the field set is not a stable contract.
func (v *RawVector) MetadataJson(json jwriter.ObjectState) {
	if !v.valid() {
		json.Name("Valid").Bool(false)
		return
	}

	h := v.header()
	usedPages := pagesForElements(h.length, v.pageElems)

	json.Name("Valid").Bool(true)
	json.Name("CapacityBytes").Int(h.capacity)
	json.Name("CapacityElements").Int(capacityElements(h))
	json.Name("Length").Int(h.length)
	json.Name("ElementSize").Int(h.elemSize)
	json.Name("PageElements").Int(v.pageElems)
	json.Name("UsedPages").Int(usedPages)
	json.Name("UnusedSlots").Int(capacityElements(h) - h.length)
	json.Name("CustomAllocator").Bool(h.flags&flagCustomAllocator != 0)
}

// BuildStatsString writes the vector's diagnostic geometry as a single json
// object to the provided writer.
func (v *RawVector) BuildStatsString(writer *jwriter.Writer) {
	obj := writer.Object()
	defer obj.End()

	v.MetadataJson(obj)
}
