package cookie

// Codec pairs a Decoder and an Encoder sharing one Signer.
type Codec struct {
	*Decoder
	*Encoder
}

// New returns a Codec for s. defaults become the encoder's attribute defaults.
func New(s Signer, defaults ...Option) *Codec {
	return &Codec{
		Decoder: NewDecoder(s),
		Encoder: NewEncoder(s, defaults...),
	}
}

// WithDecoderOptions returns a copy of c whose Decoder is rebuilt with opts.
func (c *Codec) WithDecoderOptions(opts ...DecoderOption) *Codec {
	return &Codec{
		Decoder: NewDecoder(c.Decoder.signer, opts...),
		Encoder: c.Encoder,
	}
}
