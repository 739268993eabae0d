// gf1_constants.go - port map, register indices and fixed sizes for the GF1 core

package main

// Port offsets, relative to the card's configured base port (ULTRASND port
// field). See the register port map.
const (
	PortMixControl      = 0x200 // write 8  - mix control latch
	PortIrqStatus       = 0x206 // read 8   - IRQ status byte
	PortTimerStatusCmd  = 0x208 // r/w 8    - Adlib-compatible timer status/command
	PortTimerCmd        = 0x209 // write 8  - timer mask/start/reset command
	PortTimerCmdMirror  = 0x20A // read 8   - mirrored Adlib command register
	PortIrqDmaControl   = 0x20B // write 8  - pending IRQ/DMA channel assignment
	PortVoiceIndex      = 0x302 // r/w 8    - current voice index (low 5 bits)
	PortGlobalRegIndex  = 0x303 // r/w 8    - global register index
	PortGlobalRegLow    = 0x304 // r/w 8/16 - global register data low / both bytes
	PortGlobalRegHigh   = 0x305 // r/w 8    - global register data high byte
	PortDramIO          = 0x307 // r/w 8    - poke/peek SampleMemory at gDramAddr
)

// Global register indices. Per-voice registers (0x00-0x0D) act on the voice
// currently selected through PortVoiceIndex; the rest address engine-wide
// state.
const (
	RegWaveCtrl      = 0x00 // voice control (wave_ctrl)
	RegFreqControl   = 0x01 // frequency -> wave_add
	RegStartAddrHigh = 0x02
	RegStartAddrLow  = 0x03
	RegEndAddrHigh   = 0x04
	RegEndAddrLow    = 0x05
	RegRampRate      = 0x06
	RegRampStart     = 0x07
	RegRampEnd       = 0x08
	RegRampCur       = 0x09 // current volume (ramp_cur)
	RegCurAddrHigh   = 0x0A
	RegCurAddrLow    = 0x0B
	RegPanPot        = 0x0C
	RegRampCtrl      = 0x0D // volume control (ramp_ctrl)

	RegActiveVoices = 0x0E // global: set-active-voices

	RegDmaControl    = 0x41 // global: DMA control bits
	RegDmaStartAddr  = 0x42 // global: DMA start address
	RegDramPtrLow    = 0x43 // global: DRAM I/O pointer low 16 bits
	RegDramPtrHigh   = 0x44 // global: DRAM I/O pointer high 4 bits

	RegReset       = 0x4C // global: master reset
	RegIrqVoiceSrc = 0x8F // global: general voice IRQ status (read, self-clearing)
)

// Wave/ramp control bits, shared layout (§3 Voice).
const (
	CtrlStopped     = 1 << 0
	CtrlStopRequest = 1 << 1
	Ctrl16Bit       = 1 << 2 // wave_ctrl only
	CtrlLoop        = 1 << 3
	CtrlBidirect    = 1 << 4
	CtrlIrqEnabled  = 1 << 5
	CtrlDecreasing  = 1 << 6
	CtrlIrqPending  = 1 << 7

	CtrlManualIrqMask = CtrlIrqPending | CtrlDecreasing // top two bits, per §3
)

// Mix control latch bits (port 0x200).
const (
	MixCtrlEnableIrq = 1 << 3
)

// IRQ/DMA assignment latch bits (port 0x20B).
const (
	IrqDmaSelectIrq = 1 << 6 // set: apply pending IRQ line, clear: apply DMA channel
)

var irqAssignLUT = [8]int{0, 2, 5, 3, 7, 11, 12, 15}
var dmaAssignLUT = [8]int{0, 1, 3, 5, 6, 7, 0, 0}

// IRQ status bits (port 0x206 / irq_status field).
const (
	IrqStatusTimer0   = 1 << 2
	IrqStatusTimer1   = 1 << 3
	IrqStatusWave     = 1 << 5
	IrqStatusRamp     = 1 << 6
	IrqStatusDmaTC    = 1 << 7
)

// DMA control bits (RegDmaControl).
const (
	DmaCtrlDirCardToHost = 1 << 1
	DmaCtrlBanked        = 1 << 2
	DmaCtrlIrqEnable     = 1 << 5
	DmaCtrlSignFlip      = 1 << 7
)

// Fixed sizes and numeric constants.
const (
	SampleMemorySize = 1 << 20 // 1 MiB
	SampleMemoryMask = SampleMemorySize - 1

	VolumeTableSize = 4096
	VolumeTableMax  = VolumeTableSize - 1
	VolumeTableStep = 1.002709201

	PanTableSize = 16

	NumVoices = 32

	PhaseFracBits = 9
	PhaseFracOne  = 1 << PhaseFracBits
	PhaseFracMask = PhaseFracOne - 1

	MinActiveVoices = 14
	MaxActiveVoices = 32

	MaxMixFrames = 64

	Int16Max        = 32767
	LimiterCeiling  = Int16Max - 1
	LimiterRelease  = float32(LimiterCeiling) * float32(VolumeTableStep-1.0)

	BaseRateConstant = 1.619695497

	Timer0BasePeriodUs = 80
	Timer1BasePeriodUs = 320
	TimerDefaultReload = 0xFF
)
