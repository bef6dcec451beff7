package test

import (
	"goki.dev/mat32/v2"
	"goki.dev/slvec/slbool"
	"goki.dev/slvec/sltype"
)

//gosl: start basic

// DataStruct has the test data
type DataStruct struct {
	Raw   float32 `desc:"raw value"`
	Integ float32 `desc:"integrated value"`
	Exp   float32 `desc:"exp of integ"`
	Pad2  float32 `desc:"must pad to multiple of 4 floats for arrays"`
}

// ParamStruct has the test params
type ParamStruct struct {
	Tau    float32     `desc:"rate constant in msec"`
	Dt     float32     `desc:"1/Tau"`
	Option slbool.Bool // note: standard bool doesn't work
	pad    float32
}

// MaskStruct holds per-channel masks
type MaskStruct struct {
	On  sltype.Bool4
	Off sltype.Bool4
}

// IntegFmRaw computes integrated value from current raw value
func (ps *ParamStruct) IntegFmRaw(ds *DataStruct) {
	newVal := ps.Dt * (ds.Raw - ds.Integ)
	if newVal < -10 || slbool.IsTrue(ps.Option) {
		newVal = -10
	}
	ds.Integ += newVal
	ds.Exp = mat32.Exp(-ds.Integ)
}

// Masked combines the masks with a comparison
func (ms *MaskStruct) Masked(a, b sltype.Float4) sltype.Bool4 {
	lt := sltype.Less4(a, b)
	on := ms.On.And(lt.Not())
	ms.Off.SetXY(on.ZW())
	if on.Xor(ms.Off).Any() {
		return on.WZYX()
	}
	return ms.Off.Or(ms.On).Equal(on)
}

// Update is only needed on the CPU
func (ms *MaskStruct) Update() {
	ms.On = sltype.Bool4Scalar(false)
}

//gosl: end basic

// Defaults is outside of any region
func (ps *ParamStruct) Defaults() {
	ps.Tau = 5
	ps.Dt = 1 / ps.Tau
}

//gosl: hlsl basic
// [[vk::binding(0, 0)]] uniform ParamStruct Params;
// [[vk::binding(0, 1)]] RWStructuredBuffer<DataStruct> Data;
// [numthreads(64, 1, 1)]
// void main(uint3 idx : SV_DispatchThreadID) {
//     Params.IntegFmRaw(Data[idx.x]);
// }
//gosl: end basic
