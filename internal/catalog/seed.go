package catalog

import "dealerd/pkg/types"

// Default returns the built-in seed lineup. Image URLs point at the supplier
// site where available. The OKG supplier page shows conflicting range figures,
// hence its bounded 60–120 km value.
func Default() []types.VehicleModel {
	return []types.VehicleModel{
		{ID: "orbit", Name: "ORBIT", Segment: SegmentScooter, Price: types.Ptr(159000), TopSpeed: 45, Range: types.FixedRange(80), MotorW: 1000, Battery: "72V 20AH (Hub)", Availability: AvailabilityReady, Img: "https://okla.com.pk/wp-content/uploads/2025/06/Frame-2085665227.jpg", Colors: []string{"Black", "Red"}},
		{ID: "onyx", Name: "ONYX", Segment: SegmentScooter, Price: types.Ptr(179000), TopSpeed: 45, Range: types.FixedRange(100), MotorW: 1200, Battery: "72V 32AH (Hub)", Availability: AvailabilityReady, Img: "https://okla.com.pk/wp-content/uploads/2020/01/Frame-1321315867-1.webp", Colors: []string{"Black", "Grey"}},
		{ID: "okt-econo", Name: "OKT Econo", Segment: SegmentScooter, Price: types.Ptr(199000), TopSpeed: 45, Range: types.FixedRange(80), MotorW: 1000, Battery: "60V 32AH (Hub)", Availability: AvailabilityReady, Img: "https://okla.com.pk/wp-content/uploads/2020/01/Frame-1321315867-1.webp", Colors: []string{"White", "Blue"}},
		{ID: "okt", Name: "OKT", Segment: SegmentScooter, Price: types.Ptr(239000), TopSpeed: 50, Range: types.FixedRange(110), MotorW: 1000, Battery: "72V 38AH (Non-Lithium, Hub)", Availability: AvailabilityReady, Img: "https://okla.com.pk/wp-content/uploads/2021/03/Frame-1321315859-1.webp", Colors: []string{"Red", "Black"}},
		{ID: "omo", Name: "OMO", Segment: SegmentScooter, Price: types.Ptr(339000), TopSpeed: 60, Range: types.FixedRange(100), MotorW: 2000, Battery: "72V 38AH (Non-Lithium, Hub)", Availability: AvailabilityReady, Img: "https://okla.com.pk/wp-content/uploads/2024/06/omo-performace.jpg", Colors: []string{"Black", "Grey"}},
		{ID: "omigo", Name: "OMIGO", Segment: SegmentScooter, Price: types.Ptr(399000), TopSpeed: 50, Range: types.FixedRange(75), MotorW: 1500, Battery: "74V 28AH (Lithium Ion, Hub)", Availability: AvailabilityBooking, Img: "https://okla.com.pk/wp-content/uploads/2020/01/Frame-1321315867-1.webp", Colors: []string{"Blue", "White"}},
		{ID: "okg", Name: "OKG", Segment: SegmentMotorcycle, Price: nil, TopSpeed: 80, Range: types.BoundedRange(60, 120), MotorW: 4000, Battery: "74V 28AH (Dual, Lithium Ion, Mid)", Availability: AvailabilityBooking, Img: "https://okla.com.pk/wp-content/uploads/2021/03/Frame-1321315859-1.webp", Colors: []string{"Black", "Red"}},
		{ID: "omax", Name: "OMAX", Segment: SegmentScooter, Price: types.Ptr(599000), TopSpeed: 85, Range: types.FixedRange(80), MotorW: 3000, Battery: "74V 28AH (Lithium, Side)", Availability: AvailabilityReady, Img: "https://okla.com.pk/wp-content/uploads/2021/03/Frame-1321315859-1.webp", Colors: []string{"Grey", "Black"}},
		{ID: "ova", Name: "OVA", Segment: SegmentMotorcycle, Price: types.Ptr(599000), TopSpeed: 80, Range: types.FixedRange(85), MotorW: 3000, Battery: "72V 40AH (Lithium Ion, Mid)", Availability: AvailabilityBooking, Img: "https://okla.com.pk/wp-content/uploads/2020/01/Frame-1321315867-1.webp", Colors: []string{"Black", "Yellow"}},
		{ID: "ovega", Name: "OVEGA", Segment: SegmentMotorcycle, Price: nil, TopSpeed: 120, Range: types.FixedRange(215), MotorW: 7000, Battery: "72V 120AH (Lithium Ion, Mid)", Availability: AvailabilityBooking, Img: "https://okla.com.pk/wp-content/uploads/2021/03/Frame-1321315859-1.webp", Colors: []string{"Black"}},
	}
}
