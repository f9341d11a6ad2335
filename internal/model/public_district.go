package model

// PublicDistrict 행정 구역 (시도 / 시군구 / 읍면동) 과 중심 좌표
type PublicDistrict struct {
	ID        uint32  `gorm:"column:id;primaryKey;autoIncrement"`
	Sido      string  `gorm:"column:sido;type:VARCHAR2(50);not null;uniqueIndex:idx_public_district_location"`
	Sgg       string  `gorm:"column:sgg;type:VARCHAR2(50);not null;uniqueIndex:idx_public_district_location"`
	Emd       string  `gorm:"column:emd;type:VARCHAR2(50);not null;uniqueIndex:idx_public_district_location"`
	Longitude float64 `gorm:"column:longitude;not null"`
	Latitude  float64 `gorm:"column:latitude;not null"`

	nearPublicDistricts []*NearPublicDistrict
}

func (*PublicDistrict) TableName() string {
	return "public_district"
}

func NewPublicDistrict(sido, sgg, emd string, longitude, latitude float64) *PublicDistrict {
	return &PublicDistrict{
		Sido:      sido,
		Sgg:       sgg,
		Emd:       emd,
		Longitude: longitude,
		Latitude:  latitude,
	}
}

// NearPublicDistricts returns a copy of the neighbour list.
func (p *PublicDistrict) NearPublicDistricts() []*NearPublicDistrict {
	out := make([]*NearPublicDistrict, len(p.nearPublicDistricts))
	copy(out, p.nearPublicDistricts)
	return out
}

// AddNearPublicDistrict attaches a neighbour, detaching it from its previous district first.
func (p *PublicDistrict) AddNearPublicDistrict(near *NearPublicDistrict) {
	if near == nil {
		return
	}
	if near.publicDistrict != nil && near.publicDistrict != p {
		near.publicDistrict.RemoveNearPublicDistrict(near)
	}
	near.publicDistrict = p
	near.PublicDistrictID = p.ID
	for _, n := range p.nearPublicDistricts {
		if n == near {
			return
		}
	}
	p.nearPublicDistricts = append(p.nearPublicDistricts, near)
}

func (p *PublicDistrict) RemoveNearPublicDistrict(near *NearPublicDistrict) {
	for i, n := range p.nearPublicDistricts {
		if n == near {
			p.nearPublicDistricts = append(p.nearPublicDistricts[:i], p.nearPublicDistricts[i+1:]...)
			if near.publicDistrict == p {
				near.publicDistrict = nil
			}
			return
		}
	}
}

// NearPublicDistrict 기준 행정 구역 주변의 행정 구역과 반경
type NearPublicDistrict struct {
	ID               uint32 `gorm:"column:id;primaryKey;autoIncrement"`
	Sido             string `gorm:"column:sido;type:VARCHAR2(50);not null"`
	Sgg              string `gorm:"column:sgg;type:VARCHAR2(50);not null"`
	Emd              string `gorm:"column:emd;type:VARCHAR2(50);not null"`
	Radius           int    `gorm:"column:radius;not null"`
	PublicDistrictID uint32 `gorm:"column:public_district_id;not null;index:idx_near_public_district_owner"`

	publicDistrict *PublicDistrict
}

func (*NearPublicDistrict) TableName() string {
	return "near_public_district"
}

func NewNearPublicDistrict(sido, sgg, emd string, radius int, publicDistrict *PublicDistrict) *NearPublicDistrict {
	near := &NearPublicDistrict{
		Sido:   sido,
		Sgg:    sgg,
		Emd:    emd,
		Radius: radius,
	}
	near.AssignPublicDistrict(publicDistrict)
	return near
}

// AssignPublicDistrict moves the neighbour under another district, keeping both sides consistent.
func (n *NearPublicDistrict) AssignPublicDistrict(publicDistrict *PublicDistrict) {
	if publicDistrict == nil {
		if n.publicDistrict != nil {
			n.publicDistrict.RemoveNearPublicDistrict(n)
		}
		return
	}
	publicDistrict.AddNearPublicDistrict(n)
}

func (n *NearPublicDistrict) PublicDistrict() *PublicDistrict {
	return n.publicDistrict
}
