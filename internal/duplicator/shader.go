package duplicator

// convertShaderSource is the sRGB→linear conversion kernel (§4.3 "Capture"
// step 3). It samples the source texel as normalized floats via the
// hardware's native decode (which performs the BGRA→RGBA channel swap for
// B8G8R8A8 sources), applies the piecewise sRGB-to-linear transfer
// function per channel, and writes into the RGBA16F composite with
// alpha = 1. Runs in 16x16 thread groups covering the blit rectangle.
const convertShaderSource = `
cbuffer BlitParams : register(b0)
{
    int2 srcOffset;
    int2 dstOffset;
    int2 blitSize;
    int2 _pad;
};

Texture2D<float4> SourceTexture : register(t0);
RWTexture2D<float4> DestTexture : register(u0);

float SRGBToLinear(float c)
{
    if (c <= 0.04045)
    {
        return c / 12.92;
    }
    return pow((c + 0.055) / 1.055, 2.4);
}

[numthreads(16, 16, 1)]
void Convert(uint3 id : SV_DispatchThreadID)
{
    if (id.x >= (uint)blitSize.x || id.y >= (uint)blitSize.y)
    {
        return;
    }

    int2 srcCoord = srcOffset + int2(id.xy);
    int2 dstCoord = dstOffset + int2(id.xy);

    float4 srcColor = SourceTexture.Load(int3(srcCoord, 0));

    float4 outColor;
    outColor.r = SRGBToLinear(srcColor.r);
    outColor.g = SRGBToLinear(srcColor.g);
    outColor.b = SRGBToLinear(srcColor.b);
    outColor.a = 1.0;

    DestTexture[dstCoord] = outColor;
}
`

const convertShaderEntryPoint = "Convert"

// blitParams matches the shader's BlitParams constant buffer layout,
// 16-byte aligned per HLSL packing rules.
type blitParams struct {
	SrcOffsetX, SrcOffsetY int32
	DstOffsetX, DstOffsetY int32
	BlitSizeX, BlitSizeY   int32
	_pad0, _pad1           int32
}
