//go:build windows

package webgpu

// WGSL compute shaders for the pooling kernels.
// Using string constants instead of embed for simplicity.

// workgroupSize is the number of invocations per workgroup.
const workgroupSize = 256

// maxWorkgroupsPerDim is the WebGPU default limit for one dispatch dimension.
const maxWorkgroupsPerDim = 65535

// poolParams is shared by both pooling shaders. Field order must match
// encodeParams.
const poolParams = `
struct Params {
    count: u32,
    channels: u32,
    height: u32,
    width: u32,
    pooled_height: u32,
    pooled_width: u32,
    pool_size: u32,
    pool_stride: u32,
    groups_x: u32,
}
`

// poolWindow decodes a flat output index into its channel plane and clipped
// window. Both pooling shaders call it; it mirrors pool.Geometry.Decode and
// pool.Geometry.Window.
const poolWindow = `
struct PoolWindow {
    base: u32,
    hstart: u32,
    hend: u32,
    wstart: u32,
    wend: u32,
}

fn output_index(global_id: vec3<u32>) -> u32 {
    return global_id.x + global_id.y * params.groups_x * 256u;
}

// index = ((n*channels + c)*pooled_height + ph)*pooled_width + pw
fn pool_window(index: u32) -> PoolWindow {
    let pw = index % params.pooled_width;
    let ph = (index / params.pooled_width) % params.pooled_height;
    let c = (index / params.pooled_width / params.pooled_height) % params.channels;
    let n = index / params.pooled_width / params.pooled_height / params.channels;

    let hstart = ph * params.pool_stride;
    let wstart = pw * params.pool_stride;
    return PoolWindow(
        (n * params.channels + c) * params.height * params.width,
        hstart,
        min(hstart + params.pool_size, params.height),
        wstart,
        min(wstart + params.pool_size, params.width)
    );
}
`

// maxpool2dShader computes one output element per invocation.
// Writes are disjoint, so no synchronization is needed.
const maxpool2dShader = poolParams + poolWindow + `
@group(0) @binding(0) var<storage, read> input: array<f32>;
@group(0) @binding(1) var<storage, read_write> output: array<f32>;
@group(0) @binding(2) var<uniform> params: Params;

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let index = output_index(global_id);
    if (index >= params.count) {
        return;
    }

    let win = pool_window(index);
    var best = input[win.base + win.hstart * params.width + win.wstart];
    for (var h = win.hstart; h < win.hend; h = h + 1u) {
        for (var w = win.wstart; w < win.wend; w = w + 1u) {
            let x = input[win.base + h * params.width + w];
            if (x > best) {
                best = x;
            }
        }
    }
    output[index] = best;
}
`

// maxpool2dBackwardShader routes each output gradient to its window arg-max.
//
// Several invocations can hit the same input_grad element when windows
// overlap. WGSL has no float atomics, so the add is a compare-exchange loop
// over the f32 bit pattern held in an atomic<u32>.
const maxpool2dBackwardShader = poolParams + poolWindow + `
@group(0) @binding(0) var<storage, read> input: array<f32>;
@group(0) @binding(1) var<storage, read> output_grad: array<f32>;
@group(0) @binding(2) var<storage, read_write> input_grad: array<atomic<u32>>;
@group(0) @binding(3) var<uniform> params: Params;

fn atomic_add_f32(i: u32, value: f32) {
    var old = atomicLoad(&input_grad[i]);
    loop {
        let sum = bitcast<u32>(bitcast<f32>(old) + value);
        let result = atomicCompareExchangeWeak(&input_grad[i], old, sum);
        if (result.exchanged) {
            break;
        }
        old = result.old_value;
    }
}

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let index = output_index(global_id);
    if (index >= params.count) {
        return;
    }

    // Strict > keeps the first row-major maximum, like the CPU kernels.
    let win = pool_window(index);
    var best_index = win.base + win.hstart * params.width + win.wstart;
    var best_value = input[best_index];
    for (var h = win.hstart; h < win.hend; h = h + 1u) {
        for (var w = win.wstart; w < win.wend; w = w + 1u) {
            let i = win.base + h * params.width + w;
            let x = input[i];
            if (x > best_value) {
                best_value = x;
                best_index = i;
            }
        }
    }
    atomic_add_f32(best_index, output_grad[index]);
}
`
