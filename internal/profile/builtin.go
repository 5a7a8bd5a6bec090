// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Circular Labs

package profile

import (
	"github.com/circularlabs/sdkgen/internal/ident"
	"github.com/circularlabs/sdkgen/internal/ir"
)

// baseProfile carries the fields shared by every target. Per-language
// records override the rest; merge is last-write-wins per field.
var baseProfile = Profile{
	TypeCase:       ident.Pascal,
	RefFormat:      "%s",
	OptionalFormat: "%s",
	Async:          AsyncSync,
	ClassName:      "CircularProtocolAPI",
}

var builtins = buildBuiltins()

func buildBuiltins() map[string]*Profile {
	overlays := []Profile{goProfile, pythonProfile, typescriptProfile, javascriptProfile, javaProfile, phpProfile, dartProfile}

	out := make(map[string]*Profile, len(overlays))
	for _, over := range overlays {
		p := merge(baseProfile, over)
		out[p.ID] = &p
	}
	return out
}

var goProfile = Profile{
	ID:          "go",
	DisplayName: "Go",
	Case:        ident.Pascal,
	Primitives: map[ir.ScalarKind]string{
		ir.ScalarString: "string",
		ir.ScalarInt:    "int64",
		ir.ScalarFloat:  "float64",
		ir.ScalarBool:   "bool",
		ir.ScalarAny:    "any",
	},
	ArrayFormat:  "[]%s",
	Async:        AsyncContext,
	VersionConst: "libVersion",
	Package:      "circularprotocol",
	Imports: []string{
		`"bytes"`,
		`"context"`,
		`"crypto/sha256"`,
		`"encoding/hex"`,
		`"encoding/json"`,
		`"fmt"`,
		`"net/http"`,
		`"strings"`,
		`"time"`,
		``,
		`"github.com/decred/dcrd/dcrec/secp256k1/v4"`,
		`"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"`,
	},
	Layout: Layout{
		Dir:    "circular-go",
		Client: "circular_protocol.go",
		Types:  "types.go",
		Test:   "circular_protocol_test.go",
	},
	Reserved: []string{
		"break", "case", "chan", "const", "continue", "default", "defer",
		"else", "fallthrough", "for", "func", "go", "goto", "if", "import",
		"interface", "map", "package", "range", "return", "select", "struct",
		"switch", "type", "var",
	},
}

var pythonProfile = Profile{
	ID:          "python",
	DisplayName: "Python",
	Case:        ident.Snake,
	Primitives: map[ir.ScalarKind]string{
		ir.ScalarString: "str",
		ir.ScalarInt:    "int",
		ir.ScalarFloat:  "float",
		ir.ScalarBool:   "bool",
		ir.ScalarAny:    "Any",
	},
	ArrayFormat:    "List[%s]",
	OptionalFormat: "Optional[%s]",
	VersionConst:   "LIB_VERSION",
	Imports: []string{
		"import hashlib",
		"from datetime import datetime, timezone",
		"from typing import Any, List, cast",
		"",
		"import requests",
		"from ecdsa import BadSignatureError, SECP256k1, SigningKey, VerifyingKey",
		"from ecdsa.util import sigdecode_der, sigencode_der",
		"",
		"from .types import *",
	},
	TypesImports: []string{
		"from typing import Any, List, Literal, Optional, TypedDict",
	},
	Layout: Layout{
		Dir:    "circular-py",
		Client: "src/circular_protocol_api/client.py",
		Types:  "src/circular_protocol_api/types.py",
		Test:   "tests/test_client.py",
	},
	Reserved: []string{
		"False", "None", "True", "and", "as", "assert", "async", "await",
		"break", "class", "continue", "def", "del", "elif", "else", "except",
		"finally", "for", "from", "global", "if", "import", "in", "is",
		"lambda", "nonlocal", "not", "or", "pass", "raise", "return", "try",
		"while", "with", "yield",
	},
}

var typescriptProfile = Profile{
	ID:          "typescript",
	DisplayName: "TypeScript",
	Case:        ident.Camel,
	Primitives: map[ir.ScalarKind]string{
		ir.ScalarString: "string",
		ir.ScalarInt:    "number",
		ir.ScalarFloat:  "number",
		ir.ScalarBool:   "boolean",
		ir.ScalarAny:    "any",
	},
	ArrayFormat:    "%s[]",
	OptionalFormat: "%s | undefined",
	RefFormat:      "types.%s",
	Async:          AsyncAwait,
	VersionConst:   "LIB_VERSION",
	Imports: []string{
		`import { createHash } from "crypto";`,
		`import { ec as EC } from "elliptic";`,
		``,
		`import * as types from "./types";`,
	},
	Layout: Layout{
		Dir:    "circular-ts",
		Client: "src/index.ts",
		Types:  "src/types.ts",
		Test:   "src/index.test.ts",
	},
	Reserved: []string{
		"break", "case", "catch", "class", "const", "continue", "debugger",
		"default", "delete", "do", "else", "enum", "export", "extends",
		"false", "finally", "for", "function", "if", "import", "in",
		"instanceof", "new", "null", "return", "super", "switch", "this",
		"throw", "true", "try", "typeof", "var", "void", "while", "with",
	},
}

var javascriptProfile = Profile{
	ID:          "javascript",
	DisplayName: "JavaScript",
	Case:        ident.Camel,
	Primitives: map[ir.ScalarKind]string{
		ir.ScalarString: "string",
		ir.ScalarInt:    "number",
		ir.ScalarFloat:  "number",
		ir.ScalarBool:   "boolean",
		ir.ScalarAny:    "*",
	},
	ArrayFormat:    "%s[]",
	OptionalFormat: "?%s",
	Async:          AsyncPromise,
	VersionConst:   "LIB_VERSION",
	Imports: []string{
		`const { createHash } = require("crypto");`,
		`const EC = require("elliptic").ec;`,
	},
	Layout: Layout{
		Dir:    "circular-js",
		Client: "lib/index.js",
		Types:  "lib/types.js",
		Test:   "test/index.test.js",
	},
	Reserved: []string{
		"break", "case", "catch", "class", "const", "continue", "debugger",
		"default", "delete", "do", "else", "enum", "export", "extends",
		"false", "finally", "for", "function", "if", "import", "in",
		"instanceof", "new", "null", "return", "super", "switch", "this",
		"throw", "true", "try", "typeof", "var", "void", "while", "with",
	},
}

var javaProfile = Profile{
	ID:          "java",
	DisplayName: "Java",
	Case:        ident.Camel,
	Primitives: map[ir.ScalarKind]string{
		ir.ScalarString: "String",
		ir.ScalarInt:    "long",
		ir.ScalarFloat:  "double",
		ir.ScalarBool:   "boolean",
		ir.ScalarAny:    "Object",
	},
	ArrayFormat: "List<%s>",
	OptionalBoxing: map[string]string{
		"long":    "Long",
		"double":  "Double",
		"boolean": "Boolean",
	},
	RefFormat:    "Types.%s",
	Async:        AsyncFuture,
	VersionConst: "LIB_VERSION",
	Package:      "io.circular.protocol",
	Imports: []string{
		"import java.io.IOException;",
		"import java.math.BigInteger;",
		"import java.net.URI;",
		"import java.net.http.HttpClient;",
		"import java.net.http.HttpRequest;",
		"import java.net.http.HttpResponse;",
		"import java.nio.charset.StandardCharsets;",
		"import java.security.MessageDigest;",
		"import java.security.NoSuchAlgorithmException;",
		"import java.time.Instant;",
		"import java.time.ZoneOffset;",
		"import java.time.format.DateTimeFormatter;",
		"import java.util.List;",
		"import java.util.concurrent.CompletableFuture;",
		"",
		"import com.fasterxml.jackson.core.type.TypeReference;",
		"import com.fasterxml.jackson.databind.JsonNode;",
		"import com.fasterxml.jackson.databind.ObjectMapper;",
		"import org.bouncycastle.asn1.sec.SECNamedCurves;",
		"import org.bouncycastle.asn1.x9.X9ECParameters;",
		"import org.bouncycastle.crypto.params.ECDomainParameters;",
		"import org.bouncycastle.crypto.params.ECPrivateKeyParameters;",
		"import org.bouncycastle.crypto.params.ECPublicKeyParameters;",
		"import org.bouncycastle.crypto.signers.ECDSASigner;",
		"import org.bouncycastle.math.ec.ECPoint;",
		"import org.bouncycastle.util.encoders.Hex;",
	},
	TypesImports: []string{
		"import java.util.List;",
		"",
		"import com.fasterxml.jackson.annotation.JsonProperty;",
		"import com.fasterxml.jackson.annotation.JsonValue;",
	},
	Layout: Layout{
		Dir:    "circular-java",
		Client: "src/main/java/io/circular/protocol/CircularProtocolAPI.java",
		Types:  "src/main/java/io/circular/protocol/Types.java",
		Test:   "src/test/java/io/circular/protocol/CircularProtocolAPITest.java",
	},
	Reserved: []string{
		"abstract", "assert", "boolean", "break", "byte", "case", "catch",
		"char", "class", "const", "continue", "default", "do", "double",
		"else", "enum", "extends", "final", "finally", "float", "for",
		"goto", "if", "implements", "import", "instanceof", "int",
		"interface", "long", "native", "new", "package", "private",
		"protected", "public", "return", "short", "static", "strictfp",
		"super", "switch", "synchronized", "this", "throw", "throws",
		"transient", "try", "void", "volatile", "while",
	},
}

var phpProfile = Profile{
	ID:          "php",
	DisplayName: "PHP",
	Case:        ident.Camel,
	Primitives: map[ir.ScalarKind]string{
		ir.ScalarString: "string",
		ir.ScalarInt:    "int",
		ir.ScalarFloat:  "float",
		ir.ScalarBool:   "bool",
		ir.ScalarAny:    "mixed",
	},
	ArrayFormat:    "array",
	OptionalFormat: "?%s",
	VersionConst:   "LIB_VERSION",
	Package:        `CircularProtocol\Api`,
	Imports: []string{
		`use Elliptic\EC;`,
		`use RuntimeException;`,
	},
	Layout: Layout{
		Dir:    "circular-php",
		Client: "src/CircularProtocolAPI.php",
		Types:  "src/Types.php",
		Test:   "tests/CircularProtocolAPITest.php",
	},
	Reserved: []string{
		"abstract", "and", "array", "as", "break", "callable", "case",
		"catch", "class", "clone", "const", "continue", "declare", "default",
		"do", "echo", "else", "elseif", "empty", "enddeclare", "endfor",
		"endforeach", "endif", "endswitch", "endwhile", "enum", "extends",
		"final", "finally", "fn", "for", "foreach", "function", "global",
		"goto", "if", "implements", "include", "instanceof", "insteadof",
		"interface", "isset", "list", "match", "namespace", "new", "or",
		"print", "private", "protected", "public", "readonly", "require",
		"return", "static", "switch", "throw", "trait", "try", "unset",
		"use", "var", "while", "xor", "yield",
	},
}

var dartProfile = Profile{
	ID:          "dart",
	DisplayName: "Dart",
	Case:        ident.Camel,
	Primitives: map[ir.ScalarKind]string{
		ir.ScalarString: "String",
		ir.ScalarInt:    "int",
		ir.ScalarFloat:  "double",
		ir.ScalarBool:   "bool",
		ir.ScalarAny:    "dynamic",
	},
	ArrayFormat:    "List<%s>",
	OptionalFormat: "%s?",
	Async:          AsyncFuture,
	VersionConst:   "libVersion",
	Imports: []string{
		"import 'dart:convert';",
		"import 'dart:typed_data';",
		"",
		"import 'package:convert/convert.dart';",
		"import 'package:crypto/crypto.dart';",
		"import 'package:http/http.dart' as http;",
		"import 'package:pointycastle/export.dart';",
		"",
		"import 'types.dart';",
	},
	Layout: Layout{
		Dir:    "circular-dart",
		Client: "lib/circular_protocol.dart",
		Types:  "lib/types.dart",
		Test:   "test/circular_protocol_test.dart",
	},
	Reserved: []string{
		"abstract", "as", "assert", "async", "await", "break", "case",
		"catch", "class", "const", "continue", "covariant", "default",
		"deferred", "do", "dynamic", "else", "enum", "export", "extends",
		"extension", "external", "factory", "false", "final", "finally",
		"for", "get", "hide", "if", "implements", "import", "in",
		"interface", "is", "late", "library", "mixin", "new", "null", "on",
		"operator", "part", "required", "rethrow", "return", "set", "show",
		"static", "super", "switch", "sync", "this", "throw", "true", "try",
		"typedef", "var", "void", "while", "with", "yield",
	},
}
