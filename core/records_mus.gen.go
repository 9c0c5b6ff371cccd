// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	mapnPlarSej4oFM4ZVKHvMsJAΞΞ   = ord.NewMapSer[string, string](ord.String, ord.String)
	mappΔAΣnWy2053YH1ExHgM1CgΞΞ   = ord.NewMapSer[string, uint64](ord.String, varint.Uint64)
	slice0d1sKsxts4ltUKΣDMe8IdwΞΞ = ord.NewSliceSer[float64](varint.Float64)
	slice0sU5T7NcMOepRiS5ΔedxwwΞΞ = ord.NewSliceSer[string](ord.String)
	slicejzlxwpK201s2PΣXYxJEP9AΞΞ = ord.NewSliceSer[float32](varint.Float32)
)

var IDMUS = iDMUS{}

type iDMUS struct{}

func (s iDMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s iDMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s iDMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s iDMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

var ContentTypeMUS = contentTypeMUS{}

type contentTypeMUS struct{}

func (s contentTypeMUS) Marshal(v ContentType, bs []byte) (n int) {
	return ord.String.Marshal(string(v), bs)
}

func (s contentTypeMUS) Unmarshal(bs []byte) (v ContentType, n int, err error) {
	tmp, n, err := ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ContentType(tmp)
	return
}

func (s contentTypeMUS) Size(v ContentType) (size int) {
	return ord.String.Size(string(v))
}

func (s contentTypeMUS) Skip(bs []byte) (n int, err error) {
	return ord.String.Skip(bs)
}

var WorkMUS = workMUS{}

type workMUS struct{}

func (s workMUS) Marshal(v Work, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Title, bs[n:])
	n += ord.String.Marshal(v.Creator, bs[n:])
	n += varint.Int.Marshal(v.PublicationYear, bs[n:])
	n += varint.Int.Marshal(v.CreatorDeathYear, bs[n:])
	n += ContentTypeMUS.Marshal(v.ContentType, bs[n:])
	n += ord.String.Marshal(v.SourceName, bs[n:])
	n += varint.Float64.Marshal(v.SourceConfidence, bs[n:])
	n += ord.Bool.Marshal(v.Corporate, bs[n:])
	n += ord.Bool.Marshal(v.Anonymous, bs[n:])
	n += slicejzlxwpK201s2PΣXYxJEP9AΞΞ.Marshal(v.Vector, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s workMUS) Unmarshal(bs []byte) (v Work, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Title, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Creator, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.PublicationYear, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CreatorDeathYear, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ContentType, n1, err = ContentTypeMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.SourceName, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.SourceConfidence, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Corporate, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Anonymous, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Vector, n1, err = slicejzlxwpK201s2PΣXYxJEP9AΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s workMUS) Size(v Work) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Title)
	size += ord.String.Size(v.Creator)
	size += varint.Int.Size(v.PublicationYear)
	size += varint.Int.Size(v.CreatorDeathYear)
	size += ContentTypeMUS.Size(v.ContentType)
	size += ord.String.Size(v.SourceName)
	size += varint.Float64.Size(v.SourceConfidence)
	size += ord.Bool.Size(v.Corporate)
	size += ord.Bool.Size(v.Anonymous)
	size += slicejzlxwpK201s2PΣXYxJEP9AΞΞ.Size(v.Vector)
	size += raw.TimeUnixMicro.Size(v.InsertedAt)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s workMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ContentTypeMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.Bool.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.Bool.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicejzlxwpK201s2PΣXYxJEP9AΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var JurisdictionRuleMUS = jurisdictionRuleMUS{}

type jurisdictionRuleMUS struct{}

func (s jurisdictionRuleMUS) Marshal(v JurisdictionRule, bs []byte) (n int) {
	n = ord.String.Marshal(v.Code, bs)
	n += ord.String.Marshal(v.Name, bs[n:])
	n += varint.Int.Marshal(v.StandardDuration, bs[n:])
	n += varint.Int.Marshal(v.CorporateDuration, bs[n:])
	n += varint.Int.Marshal(v.AnonymousDuration, bs[n:])
	n += varint.Int.Marshal(v.PublicDomainBefore, bs[n:])
	n += ord.Bool.Marshal(v.RequiresRegistration, bs[n:])
	return n + ord.String.Marshal(v.Notes, bs[n:])
}

func (s jurisdictionRuleMUS) Unmarshal(bs []byte) (v JurisdictionRule, n int, err error) {
	v.Code, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Name, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.StandardDuration, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CorporateDuration, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.AnonymousDuration, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.PublicDomainBefore, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.RequiresRegistration, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Notes, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s jurisdictionRuleMUS) Size(v JurisdictionRule) (size int) {
	size = ord.String.Size(v.Code)
	size += ord.String.Size(v.Name)
	size += varint.Int.Size(v.StandardDuration)
	size += varint.Int.Size(v.CorporateDuration)
	size += varint.Int.Size(v.AnonymousDuration)
	size += varint.Int.Size(v.PublicDomainBefore)
	size += ord.Bool.Size(v.RequiresRegistration)
	return size + ord.String.Size(v.Notes)
}

func (s jurisdictionRuleMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.Bool.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	return
}

var ModelStateMUS = modelStateMUS{}

type modelStateMUS struct{}

func (s modelStateMUS) Marshal(v ModelState, bs []byte) (n int) {
	n = slice0d1sKsxts4ltUKΣDMe8IdwΞΞ.Marshal(v.Weights, bs)
	n += varint.Float64.Marshal(v.Bias, bs[n:])
	n += varint.Int64.Marshal(v.SampleCount, bs[n:])
	n += varint.Float64.Marshal(v.RollingAccuracy, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.LastTrained, bs[n:])
}

func (s modelStateMUS) Unmarshal(bs []byte) (v ModelState, n int, err error) {
	v.Weights, n, err = slice0d1sKsxts4ltUKΣDMe8IdwΞΞ.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Bias, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.SampleCount, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.RollingAccuracy, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.LastTrained, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s modelStateMUS) Size(v ModelState) (size int) {
	size = slice0d1sKsxts4ltUKΣDMe8IdwΞΞ.Size(v.Weights)
	size += varint.Float64.Size(v.Bias)
	size += varint.Int64.Size(v.SampleCount)
	size += varint.Float64.Size(v.RollingAccuracy)
	return size + raw.TimeUnixMicro.Size(v.LastTrained)
}

func (s modelStateMUS) Skip(bs []byte) (n int, err error) {
	n, err = slice0d1sKsxts4ltUKΣDMe8IdwΞΞ.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var VocabularySnapshotMUS = vocabularySnapshotMUS{}

type vocabularySnapshotMUS struct{}

func (s vocabularySnapshotMUS) Marshal(v VocabularySnapshot, bs []byte) (n int) {
	n = mapnPlarSej4oFM4ZVKHvMsJAΞΞ.Marshal(v.Corrections, bs)
	n += slice0sU5T7NcMOepRiS5ΔedxwwΞΞ.Marshal(v.KnownTitles, bs[n:])
	n += mappΔAΣnWy2053YH1ExHgM1CgΞΞ.Marshal(v.WordFreq, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s vocabularySnapshotMUS) Unmarshal(bs []byte) (v VocabularySnapshot, n int, err error) {
	v.Corrections, n, err = mapnPlarSej4oFM4ZVKHvMsJAΞΞ.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.KnownTitles, n1, err = slice0sU5T7NcMOepRiS5ΔedxwwΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.WordFreq, n1, err = mappΔAΣnWy2053YH1ExHgM1CgΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s vocabularySnapshotMUS) Size(v VocabularySnapshot) (size int) {
	size = mapnPlarSej4oFM4ZVKHvMsJAΞΞ.Size(v.Corrections)
	size += slice0sU5T7NcMOepRiS5ΔedxwwΞΞ.Size(v.KnownTitles)
	size += mappΔAΣnWy2053YH1ExHgM1CgΞΞ.Size(v.WordFreq)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s vocabularySnapshotMUS) Skip(bs []byte) (n int, err error) {
	n, err = mapnPlarSej4oFM4ZVKHvMsJAΞΞ.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = slice0sU5T7NcMOepRiS5ΔedxwwΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = mappΔAΣnWy2053YH1ExHgM1CgΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}
