package params

// defineParams declares every nmtkit parameter. The declaration order within
// a group and the group order both matter: derivation functions run in this
// order and may depend on results of earlier ones.
func defineParams(s *Spec) {

	// Internal parameters without a command-line surface.

	s.add("", &ParamSpec{
		Name: "model_version", Kind: KindFloat, Default: nil,
		Derive: deriveModelVersion,
	})

	s.add("", &ParamSpec{
		Name: "legacy_compat", Kind: KindBool, Default: nil,
		Derive: func(v *Values, meta *Meta) (any, error) {
			return meta.FromLegacy, nil
		},
	})

	s.add("", &ParamSpec{
		Name: "source_dicts", Kind: KindStrings, Default: nil,
		Derive: deriveSourceDicts,
	})

	s.add("", &ParamSpec{
		Name: "target_dict", Kind: KindString, Default: nil,
		Derive: deriveTargetDict,
	})

	s.add("", &ParamSpec{
		Name: "target_embedding_size", Kind: KindInt, Default: nil,
		Derive: deriveTargetEmbeddingSize,
	})

	// Group: data sets; model loading and saving.

	s.add("data", &ParamSpec{
		Name: "source_dataset", Kind: KindString, Default: nil,
		VisibleFlags: []string{"source_dataset"},
		Derive:       deriveSourceDataset,
		Metavar:      "PATH",
		Help:         "parallel training corpus (source)",
	})

	s.add("data", &ParamSpec{
		Name: "target_dataset", Kind: KindString, Default: nil,
		VisibleFlags: []string{"target_dataset"},
		Derive:       deriveTargetDataset,
		Metavar:      "PATH",
		Help:         "parallel training corpus (target)",
	})

	// Hidden option for backward compatibility.
	s.add("data", &ParamSpec{
		Name: "datasets", Kind: KindStringPair, Default: nil,
		HiddenFlags: []string{"datasets"},
		Metavar:     "PATH",
		Help:        "parallel training corpus (source and target)",
	})

	s.add("data", &ParamSpec{
		Name: "dictionaries", Kind: KindStrings, Default: nil,
		VisibleFlags: []string{"dictionaries"},
		Required:     true,
		Metavar:      "PATH",
		Help: "network vocabularies (one per source factor, plus target " +
			"vocabulary)",
	})

	s.add("data", &ParamSpec{
		Name: "saveFreq", Kind: KindInt, Default: 30000,
		VisibleFlags: []string{"saveFreq"},
		Metavar:      "INT",
		Help:         "save frequency",
	})

	s.add("data", &ParamSpec{
		Name: "saveto", Kind: KindString, Default: "model",
		VisibleFlags: []string{"model", "saveto"},
		Metavar:      "PATH",
		Help:         "model file name",
	})

	s.add("data", &ParamSpec{
		Name: "reload", Kind: KindString, Default: nil,
		VisibleFlags: []string{"reload"},
		Metavar:      "PATH",
		Help: "load existing model from this path. Set to " +
			"\"latest_checkpoint\" to reload the latest checkpoint in the " +
			"same directory of --model",
	})

	s.add("data", &ParamSpec{
		Name: "reload_training_progress", Kind: KindBool, Default: true,
		VisibleFlags: []string{"no_reload_training_progress"},
		Inverted:     true,
		Help: "don't reload training progress (only used if --reload " +
			"is enabled)",
	})

	s.add("data", &ParamSpec{
		Name: "summary_dir", Kind: KindString, Default: nil,
		VisibleFlags: []string{"summary_dir"},
		Metavar:      "PATH",
		Help: "directory for saving summaries (default: same directory " +
			"as the --model file)",
	})

	s.add("data", &ParamSpec{
		Name: "summaryFreq", Kind: KindInt, Default: 0,
		VisibleFlags: []string{"summaryFreq"},
		Metavar:      "INT",
		Help: "save summaries after INT updates, if 0 do not save " +
			"summaries",
	})

	// Group: network parameters.

	s.add("network", &ParamSpec{
		Name: "embedding_size", Kind: KindInt, Default: 512,
		LegacyNames:  []string{"dim_word"},
		VisibleFlags: []string{"embedding_size", "dim_word"},
		Metavar:      "INT",
		Help:         "embedding layer size",
	})

	s.add("network", &ParamSpec{
		Name: "state_size", Kind: KindInt, Default: 1000,
		LegacyNames:  []string{"dim"},
		VisibleFlags: []string{"state_size", "dim"},
		Metavar:      "INT",
		Help:         "hidden state size",
	})

	s.add("network", &ParamSpec{
		Name: "source_vocab_sizes", Kind: KindInts, Default: nil,
		VisibleFlags: []string{"source_vocab_sizes", "n_words_src"},
		Derive:       deriveSourceVocabSizes,
		Metavar:      "INT",
		Help:         "source vocabulary sizes (one per input factor)",
	})

	s.add("network", &ParamSpec{
		Name: "target_vocab_size", Kind: KindInt, Default: -1,
		LegacyNames:  []string{"n_words"},
		VisibleFlags: []string{"target_vocab_size", "n_words"},
		Derive:       deriveTargetVocabSize,
		Metavar:      "INT",
		Help:         "target vocabulary size",
	})

	s.add("network", &ParamSpec{
		Name: "factors", Kind: KindInt, Default: 1,
		VisibleFlags: []string{"factors"},
		Metavar:      "INT",
		Help:         "number of input factors",
	})

	s.add("network", &ParamSpec{
		Name: "dim_per_factor", Kind: KindInts, Default: nil,
		VisibleFlags: []string{"dim_per_factor"},
		Derive:       deriveDimPerFactor,
		Metavar:      "INT",
		Help: "list of word vector dimensionalities (one per factor): " +
			"'--dim_per_factor 250,200,50' for total dimensionality of 500",
	})

	s.add("network", &ParamSpec{
		Name: "enc_depth", Kind: KindInt, Default: 1,
		VisibleFlags: []string{"enc_depth"},
		Metavar:      "INT",
		Help:         "number of encoder layers",
	})

	s.add("network", &ParamSpec{
		Name: "enc_recurrence_transition_depth", Kind: KindInt, Default: 1,
		VisibleFlags: []string{"enc_recurrence_transition_depth"},
		Metavar:      "INT",
		Help: "number of GRU transition operations applied in the " +
			"encoder. Minimum is 1. (Only applies to gru)",
	})

	s.add("network", &ParamSpec{
		Name: "dec_depth", Kind: KindInt, Default: 1,
		VisibleFlags: []string{"dec_depth"},
		Metavar:      "INT",
		Help:         "number of decoder layers",
	})

	s.add("network", &ParamSpec{
		Name: "dec_base_recurrence_transition_depth", Kind: KindInt, Default: 2,
		VisibleFlags: []string{"dec_base_recurrence_transition_depth"},
		Metavar:      "INT",
		Help: "number of GRU transition operations applied in the first " +
			"layer of the decoder. Minimum is 2. (Only applies to gru_cond)",
	})

	s.add("network", &ParamSpec{
		Name: "dec_high_recurrence_transition_depth", Kind: KindInt, Default: 1,
		VisibleFlags: []string{"dec_high_recurrence_transition_depth"},
		Metavar:      "INT",
		Help: "number of GRU transition operations applied in the higher " +
			"layers of the decoder. Minimum is 1. (Only applies to gru)",
	})

	s.add("network", &ParamSpec{
		Name: "dec_deep_context", Kind: KindBool, Default: false,
		VisibleFlags: []string{"dec_deep_context"},
		Help: "pass context vector (from first layer) to deep decoder " +
			"layers",
	})

	s.add("network", &ParamSpec{
		Name: "use_dropout", Kind: KindBool, Default: false,
		VisibleFlags: []string{"use_dropout"},
		Help:         "use dropout layer",
	})

	s.add("network", &ParamSpec{
		Name: "dropout_embedding", Kind: KindFloat, Default: nil,
		VisibleFlags: []string{"dropout_embedding"},
		Derive:       deriveDropoutEmbedding,
		Metavar:      "FLOAT",
		Help:         "dropout for input embeddings (0: no dropout)",
	})

	s.add("network", &ParamSpec{
		Name: "dropout_hidden", Kind: KindFloat, Default: nil,
		VisibleFlags: []string{"dropout_hidden"},
		Derive:       deriveDropoutHidden,
		Metavar:      "FLOAT",
		Help:         "dropout for hidden layer (0: no dropout)",
	})

	s.add("network", &ParamSpec{
		Name: "dropout_source", Kind: KindFloat, Default: 0.0,
		VisibleFlags: []string{"dropout_source"},
		Metavar:      "FLOAT",
		Help:         "dropout source words (0: no dropout)",
	})

	s.add("network", &ParamSpec{
		Name: "dropout_target", Kind: KindFloat, Default: 0.0,
		VisibleFlags: []string{"dropout_target"},
		Metavar:      "FLOAT",
		Help:         "dropout target words (0: no dropout)",
	})

	s.add("network", &ParamSpec{
		Name: "use_layer_norm", Kind: KindBool, Default: false,
		LegacyNames:  []string{"layer_normalisation"},
		VisibleFlags: []string{"use_layer_norm", "layer_normalisation"},
		Help:         "set to use layer normalization in encoder and decoder",
	})

	s.add("network", &ParamSpec{
		Name: "tie_encoder_decoder_embeddings", Kind: KindBool, Default: false,
		VisibleFlags: []string{"tie_encoder_decoder_embeddings"},
		Help: "tie the input embeddings of the encoder and the decoder " +
			"(first factor only). Source and target vocabulary size " +
			"must be the same",
	})

	s.add("network", &ParamSpec{
		Name: "tie_decoder_embeddings", Kind: KindBool, Default: false,
		VisibleFlags: []string{"tie_decoder_embeddings"},
		Help: "tie the input embeddings of the decoder with the softmax " +
			"output embeddings",
	})

	s.add("network", &ParamSpec{
		Name: "output_hidden_activation", Kind: KindString, Default: "tanh",
		VisibleFlags: []string{"output_hidden_activation"},
		Choices:      []string{"tanh", "relu", "prelu", "linear"},
		Help: "activation function in hidden layer of the output " +
			"network",
	})

	s.add("network", &ParamSpec{
		Name: "softmax_mixture_size", Kind: KindInt, Default: 1,
		VisibleFlags: []string{"softmax_mixture_size"},
		Metavar:      "INT",
		Help:         "number of softmax components to use",
	})

	// Group: training parameters.

	s.add("training", &ParamSpec{
		Name: "maxlen", Kind: KindInt, Default: 100,
		VisibleFlags: []string{"maxlen"},
		Metavar:      "INT",
		Help:         "maximum sequence length for training and validation",
	})

	s.add("training", &ParamSpec{
		Name: "batch_size", Kind: KindInt, Default: 80,
		VisibleFlags: []string{"batch_size"},
		Metavar:      "INT",
		Help:         "minibatch size",
	})

	s.add("training", &ParamSpec{
		Name: "token_batch_size", Kind: KindInt, Default: 0,
		VisibleFlags: []string{"token_batch_size"},
		Metavar:      "INT",
		Help: "minibatch size (expressed in number of source or target " +
			"tokens). Sentence-level minibatch size will be dynamic. If " +
			"this is enabled, batch_size only affects sorting by length.",
	})

	s.add("training", &ParamSpec{
		Name: "max_epochs", Kind: KindInt, Default: 5000,
		VisibleFlags: []string{"max_epochs"},
		Metavar:      "INT",
		Help:         "maximum number of epochs",
	})

	s.add("training", &ParamSpec{
		Name: "finish_after", Kind: KindInt, Default: 10000000,
		VisibleFlags: []string{"finish_after"},
		Metavar:      "INT",
		Help:         "maximum number of updates (minibatches)",
	})

	s.add("training", &ParamSpec{
		Name: "decay_c", Kind: KindFloat, Default: 0.0,
		VisibleFlags: []string{"decay_c"},
		Metavar:      "FLOAT",
		Help:         "L2 regularization penalty",
	})

	s.add("training", &ParamSpec{
		Name: "map_decay_c", Kind: KindFloat, Default: 0.0,
		VisibleFlags: []string{"map_decay_c"},
		Metavar:      "FLOAT",
		Help: "MAP-L2 regularization penalty towards original weights",
	})

	s.add("training", &ParamSpec{
		Name: "prior_model", Kind: KindString, Default: nil,
		VisibleFlags: []string{"prior_model"},
		Metavar:      "PATH",
		Help: "prior model for MAP-L2 regularization. Unless using " +
			"\"--reload\", this will also be used for initialization.",
	})

	s.add("training", &ParamSpec{
		Name: "clip_c", Kind: KindFloat, Default: 1.0,
		VisibleFlags: []string{"clip_c"},
		Metavar:      "FLOAT",
		Help:         "gradient clipping threshold",
	})

	s.add("training", &ParamSpec{
		Name: "label_smoothing", Kind: KindFloat, Default: 0.0,
		VisibleFlags: []string{"label_smoothing"},
		Metavar:      "FLOAT",
		Help:         "label smoothing",
	})

	s.add("training", &ParamSpec{
		Name: "shuffle_each_epoch", Kind: KindBool, Default: true,
		VisibleFlags: []string{"no_shuffle"},
		Inverted:     true,
		Help:         "disable shuffling of training data (for each epoch)",
	})

	s.add("training", &ParamSpec{
		Name: "keep_train_set_in_memory", Kind: KindBool, Default: false,
		VisibleFlags: []string{"keep_train_set_in_memory"},
		Help:         "keep training dataset lines stored in RAM during training",
	})

	s.add("training", &ParamSpec{
		Name: "sort_by_length", Kind: KindBool, Default: true,
		VisibleFlags: []string{"no_sort_by_length"},
		Inverted:     true,
		Help:         "do not sort sentences in maxibatch by length",
	})

	s.add("training", &ParamSpec{
		Name: "maxibatch_size", Kind: KindInt, Default: 20,
		VisibleFlags: []string{"maxibatch_size"},
		Metavar:      "INT",
		Help: "size of maxibatch (number of minibatches that are sorted " +
			"by length)",
	})

	s.add("training", &ParamSpec{
		Name: "optimizer", Kind: KindString, Default: "adam",
		VisibleFlags: []string{"optimizer"},
		Choices:      []string{"adam"},
		Help:         "optimizer",
	})

	s.add("training", &ParamSpec{
		Name: "learning_rate", Kind: KindFloat, Default: 0.0001,
		LegacyNames:  []string{"lrate"},
		VisibleFlags: []string{"learning_rate", "lrate"},
		Metavar:      "FLOAT",
		Help:         "learning rate",
	})

	s.add("training", &ParamSpec{
		Name: "adam_beta1", Kind: KindFloat, Default: 0.9,
		VisibleFlags: []string{"adam_beta1"},
		Metavar:      "FLOAT",
		Help: "exponential decay rate for the first moment estimates",
	})

	s.add("training", &ParamSpec{
		Name: "adam_beta2", Kind: KindFloat, Default: 0.999,
		VisibleFlags: []string{"adam_beta2"},
		Metavar:      "FLOAT",
		Help: "exponential decay rate for the second moment estimates",
	})

	s.add("training", &ParamSpec{
		Name: "adam_epsilon", Kind: KindFloat, Default: 1e-08,
		VisibleFlags: []string{"adam_epsilon"},
		Metavar:      "FLOAT",
		Help:         "constant for numerical stability",
	})

	// Group: validation parameters.

	s.add("validation", &ParamSpec{
		Name: "valid_source_dataset", Kind: KindString, Default: nil,
		VisibleFlags: []string{"valid_source_dataset"},
		Derive:       deriveValidSourceDataset,
		Metavar:      "PATH",
		Help:         "source validation corpus",
	})

	s.add("validation", &ParamSpec{
		Name: "valid_target_dataset", Kind: KindString, Default: nil,
		VisibleFlags: []string{"valid_target_dataset"},
		Derive:       deriveValidTargetDataset,
		Metavar:      "PATH",
		Help:         "target validation corpus",
	})

	// Hidden option for backward compatibility.
	s.add("validation", &ParamSpec{
		Name: "valid_datasets", Kind: KindStringPair, Default: nil,
		HiddenFlags: []string{"valid_datasets"},
		Metavar:     "PATH",
		Help:        "validation corpus (source and target)",
	})

	s.add("validation", &ParamSpec{
		Name: "valid_batch_size", Kind: KindInt, Default: 80,
		VisibleFlags: []string{"valid_batch_size"},
		Metavar:      "INT",
		Help:         "validation minibatch size",
	})

	s.add("validation", &ParamSpec{
		Name: "valid_token_batch_size", Kind: KindInt, Default: 0,
		VisibleFlags: []string{"valid_token_batch_size"},
		Metavar:      "INT",
		Help: "validation minibatch size (expressed in number of source " +
			"or target tokens). Sentence-level minibatch size will be " +
			"dynamic. If this is enabled, valid_batch_size only affects " +
			"sorting by length.",
	})

	s.add("validation", &ParamSpec{
		Name: "validFreq", Kind: KindInt, Default: 10000,
		VisibleFlags: []string{"validFreq"},
		Metavar:      "INT",
		Help:         "validation frequency",
	})

	s.add("validation", &ParamSpec{
		Name: "valid_script", Kind: KindString, Default: nil,
		VisibleFlags: []string{"valid_script"},
		Metavar:      "PATH",
		Help: "path to script for external validation. The script will " +
			"be passed an argument specifying the path of a file that " +
			"contains translations of the source validation corpus. It " +
			"must write a single score to standard output.",
	})

	s.add("validation", &ParamSpec{
		Name: "patience", Kind: KindInt, Default: 10,
		VisibleFlags: []string{"patience"},
		Metavar:      "INT",
		Help:         "early stopping patience",
	})

	// Group: display parameters.

	s.add("display", &ParamSpec{
		Name: "dispFreq", Kind: KindInt, Default: 1000,
		VisibleFlags: []string{"dispFreq"},
		Metavar:      "INT",
		Help:         "display loss after INT updates",
	})

	s.add("display", &ParamSpec{
		Name: "sampleFreq", Kind: KindInt, Default: 10000,
		VisibleFlags: []string{"sampleFreq"},
		Metavar:      "INT",
		Help:         "display some samples after INT updates",
	})

	s.add("display", &ParamSpec{
		Name: "beamFreq", Kind: KindInt, Default: 10000,
		VisibleFlags: []string{"beamFreq"},
		Metavar:      "INT",
		Help:         "display some beam search samples after INT updates",
	})

	s.add("display", &ParamSpec{
		Name: "beam_size", Kind: KindInt, Default: 12,
		VisibleFlags: []string{"beam_size"},
		Metavar:      "INT",
		Help:         "size of the beam",
	})

	// Group: translate parameters.

	s.add("translate", &ParamSpec{
		Name: "normalize", Kind: KindBool, Default: true,
		VisibleFlags: []string{"no_normalize"},
		Inverted:     true,
		Help:         "cost of sentences will not be normalized by length",
	})

	s.add("translate", &ParamSpec{
		Name: "n_best", Kind: KindBool, Default: false,
		VisibleFlags: []string{"n_best"},
		Help:         "print full beam",
	})

	s.add("translate", &ParamSpec{
		Name: "translation_maxlen", Kind: KindInt, Default: 200,
		VisibleFlags: []string{"translation_maxlen"},
		Metavar:      "INT",
		Help: "maximum length of translation output sentence",
	})
}
