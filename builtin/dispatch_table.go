package builtin

// IDs are a closed, stable numbering of every built-in the compiler may
// reference by dispatch number; new built-ins are appended, never
// renumbered, so a compiled module's constant pool stays valid across
// core versions.
const (
	IDPrint ID = iota
	IDReadLine
	IDToStr

	IDStrUpper
	IDStrLower
	IDStrTrim
	IDStrStartsWith
	IDStrEndsWith
	IDStrFind
	IDStrReplace
	IDStrReverse
	IDStrRepeat
	IDStrPadLeft
	IDStrPadRight
	IDStrContains
	IDStrCount
	IDStrCharAt
	IDChr
	IDOrd
	IDIntToHex
	IDHexToInt
	IDSplitStr
	IDJoinArr
	IDConcatAll
	IDStrFromChars
	IDStrBytes

	IDIAbs
	IDIMin
	IDIMax
	IDIPow
	IDISqrt
	IDIFloor
	IDICeil
	IDIRound
	IDIClamp
	IDISign
	IDFAbs
	IDFSin
	IDFCos
	IDFTan
	IDFAsin
	IDFAcos
	IDFAtan
	IDFSqrt
	IDFLog
	IDFLog10
	IDFExp
	IDFFloor
	IDFCeil
	IDFRound
	IDFPow
	IDFMin
	IDFMax
	IDIntToFloat
	IDFloatToInt
	IDIsNan
	IDIsInf

	IDRandInt
	IDRandSeed
	IDRandRange

	IDFileRead
	IDFileWrite
	IDFileAppend
	IDFileExists
	IDFileDelete
	IDFileSize
	IDFileCopy
	IDFileReadBytes
	IDFileWriteBytes

	IDRegexMatch
	IDRegexSearch
	IDRegexReplace
	IDRegexSplit
	IDRegexFindAll

	IDJsonParse
	IDJsonStringify

	IDBytesNew
	IDBytesGet
	IDBytesSet
	IDBytesLen
	IDBytesAppend
	IDBytesWriteU16
	IDBytesReadU16
	IDBytesWriteU32
	IDBytesReadU32
	IDBytesWriteI64
	IDBytesReadI64
	IDIntToBytes
	IDIntFromBytes

	IDBAnd
	IDBOr
	IDBXor
	IDBNot
	IDBShl
	IDBShr

	IDSha256
	IDMd5
	IDSecureCompare
	IDRandomBytes

	IDThreadSpawn
	IDThreadCurrent
	IDThreadYield
	IDThreadSleep
	IDThreadJoin
	IDThreadDetach
	IDMutexNew
	IDMutexLock
	IDMutexTrylock
	IDMutexUnlock
	IDCondNew
	IDCondWait
	IDCondSignal
	IDCondBroadcast

	IDArrayLen
	IDArrayPush
	IDArrayPop
	IDArrayGet
	IDArraySet
	IDArrayInsert
	IDArrayRemove
	IDArraySlice
	IDArraySort
	IDArrayConcat
	IDArrayCopy
	IDArrayClear
	IDArrayIndexOf
	IDArrayContains
	IDArrayReverse
	IDArrayFill
	IDMapLen
	IDMapSet
	IDMapGet
	IDMapHasKey
	IDMapDelete
	IDMapKeys
	IDMapValues
	IDStructGet
	IDStructSet

	IDTypeOf
	IDTag
	IDArgv
	IDArgc
	IDGetenv
	IDClockMs
	IDExit
	IDSleep
	IDParseInt

	IDStrIndexOf
)

// variadic marks built-ins whose argument count is checked inside the
// function body instead of by Dispatch (print, concat_all).
const variadic = -1

var dispatchTable = map[ID]entry{
	IDPrint:    {"print", variadic, builtinPrint},
	IDReadLine: {"read_line", 0, builtinReadLine},
	IDToStr:    {"to_str", 1, builtinToStr},

	IDStrUpper:      {"str_upper", 1, strUpper},
	IDStrLower:      {"str_lower", 1, strLower},
	IDStrTrim:       {"str_trim", 1, strTrim},
	IDStrStartsWith: {"str_starts_with", 2, strStartsWith},
	IDStrEndsWith:   {"str_ends_with", 2, strEndsWith},
	IDStrFind:       {"str_find", 2, strFind},
	IDStrIndexOf:    {"index_of", 2, strFind},
	IDStrReplace:    {"str_replace", 3, strReplace},
	IDStrReverse:    {"str_reverse", 1, strReverse},
	IDStrRepeat:     {"str_repeat", 2, strRepeat},
	IDStrPadLeft:    {"str_pad_left", 3, strPadLeft},
	IDStrPadRight:   {"str_pad_right", 3, strPadRight},
	IDStrContains:   {"str_contains", 2, strContains},
	IDStrCount:      {"str_count", 2, strCount},
	IDStrCharAt:     {"str_char_at", 2, strCharAt},
	IDChr:           {"chr", 1, strChr},
	IDOrd:           {"ord", 1, strOrd},
	IDIntToHex:      {"int_to_hex", 1, intToHex},
	IDHexToInt:      {"hex_to_int", 1, hexToInt},
	IDSplitStr:      {"split_str", 2, strSplit},
	IDJoinArr:       {"join_arr", 2, strJoinArr},
	IDConcatAll:     {"concat_all", variadic, strConcatAll},
	IDStrFromChars:  {"str_from_chars", 1, strFromChars},
	IDStrBytes:      {"str_bytes", 1, strBytes},

	IDIAbs:       {"iabs", 1, intAbs},
	IDIMin:       {"imin", 2, intMin},
	IDIMax:       {"imax", 2, intMax},
	IDIPow:       {"ipow", 2, intPow},
	IDISqrt:      {"isqrt", 1, intSqrt},
	IDIFloor:     {"ifloor", 1, intFloor},
	IDICeil:      {"iceil", 1, intCeil},
	IDIRound:     {"iround", 1, intRound},
	IDIClamp:     {"iclamp", 3, intClamp},
	IDISign:      {"isign", 1, intSign},
	IDFAbs:       {"fabs", 1, fabs},
	IDFSin:       {"fsin", 1, fsin},
	IDFCos:       {"fcos", 1, fcos},
	IDFTan:       {"ftan", 1, ftan},
	IDFAsin:      {"fasin", 1, fasin},
	IDFAcos:      {"facos", 1, facos},
	IDFAtan:      {"fatan", 1, fatan},
	IDFSqrt:      {"fsqrt", 1, fsqrt},
	IDFLog:       {"flog", 1, flog},
	IDFLog10:     {"flog10", 1, flog10},
	IDFExp:       {"fexp", 1, fexp},
	IDFFloor:     {"ffloor", 1, ffloor},
	IDFCeil:      {"fceil", 1, fceil},
	IDFRound:     {"fround", 1, fround},
	IDFPow:       {"fpow", 2, fpow},
	IDFMin:       {"fmin", 2, fmin},
	IDFMax:       {"fmax", 2, fmax},
	IDIntToFloat: {"int_to_float", 1, intToFloat},
	IDFloatToInt: {"float_to_int", 1, floatToInt},
	IDIsNan:      {"is_nan", 1, isNan},
	IDIsInf:      {"is_inf", 1, isInf},

	IDRandInt:   {"rand_int", 0, randInt},
	IDRandSeed:  {"rand_seed", 1, randSeed},
	IDRandRange: {"rand_range", 2, randRange},

	IDFileRead:       {"file_read", 1, fileRead},
	IDFileWrite:      {"file_write", 2, fileWrite},
	IDFileAppend:     {"file_append", 2, fileAppend},
	IDFileExists:     {"file_exists", 1, fileExists},
	IDFileDelete:     {"file_delete", 1, fileDelete},
	IDFileSize:       {"file_size", 1, fileSize},
	IDFileCopy:       {"file_copy", 2, fileCopy},
	IDFileReadBytes:  {"file_read_bytes", 1, fileReadBytes},
	IDFileWriteBytes: {"file_write_bytes", 2, fileWriteBytes},

	IDRegexMatch:    {"regex_match", 2, regexMatch},
	IDRegexSearch:   {"regex_search", 2, regexSearch},
	IDRegexReplace:  {"regex_replace", 3, regexReplace},
	IDRegexSplit:    {"regex_split", 2, regexSplit},
	IDRegexFindAll:  {"regex_find_all", 2, regexFindAll},

	IDJsonParse:     {"json_parse", 1, jsonParseBuiltin},
	IDJsonStringify: {"json_stringify", 1, jsonStringifyBuiltin},

	IDBytesNew:      {"bytes_new", 1, bytesNew},
	IDBytesGet:      {"bytes_get", 2, bytesGet},
	IDBytesSet:      {"bytes_set", 3, bytesSet},
	IDBytesLen:      {"bytes_len", 1, bytesLen},
	IDBytesAppend:   {"bytes_append", 2, bytesAppend},
	IDBytesWriteU16: {"bytes_write_u16", 3, bytesWriteU16},
	IDBytesReadU16:  {"bytes_read_u16", 2, bytesReadU16},
	IDBytesWriteU32: {"bytes_write_u32", 3, bytesWriteU32},
	IDBytesReadU32:  {"bytes_read_u32", 2, bytesReadU32},
	IDBytesWriteI64: {"bytes_write_i64", 3, bytesWriteI64},
	IDBytesReadI64:  {"bytes_read_i64", 2, bytesReadI64},
	IDIntToBytes:    {"int_to_bytes", 2, intToBytes},
	IDIntFromBytes:  {"int_from_bytes", 3, intFromBytes},

	IDBAnd: {"band", 2, bitAnd},
	IDBOr:  {"bor", 2, bitOr},
	IDBXor: {"bxor", 2, bitXor},
	IDBNot: {"bnot", 1, bitNot},
	IDBShl: {"bshl", 2, bitShl},
	IDBShr: {"bshr", 2, bitShr},

	IDSha256:        {"sha256", 1, sha256Builtin},
	IDMd5:           {"md5", 1, md5Builtin},
	IDSecureCompare: {"secure_compare", 2, secureCompare},
	IDRandomBytes:   {"random_bytes", 1, randomBytes},

	IDThreadSpawn:    {"thread_spawn", variadic, threadSpawn},
	IDThreadCurrent:  {"thread_current", 0, threadCurrent},
	IDThreadYield:    {"thread_yield", 0, threadYield},
	IDThreadSleep:    {"thread_sleep", 1, threadSleep},
	IDThreadJoin:     {"thread_join", 1, threadJoin},
	IDThreadDetach:   {"thread_detach", 1, threadDetach},
	IDMutexNew:       {"mutex_new", 0, mutexNew},
	IDMutexLock:      {"mutex_lock", 1, mutexLock},
	IDMutexTrylock:   {"mutex_trylock", 1, mutexTrylock},
	IDMutexUnlock:    {"mutex_unlock", 1, mutexUnlock},
	IDCondNew:        {"cond_new", 1, condNew},
	IDCondWait:       {"cond_wait", 1, condWait},
	IDCondSignal:     {"cond_signal", 1, condSignal},
	IDCondBroadcast:  {"cond_broadcast", 1, condBroadcast},

	IDArrayLen:      {"array_len", 1, arrayLen},
	IDArrayPush:     {"array_push", 2, arrayPush},
	IDArrayPop:      {"array_pop", 1, arrayPop},
	IDArrayGet:      {"array_get", 2, arrayGet},
	IDArraySet:      {"array_set", 3, arraySet},
	IDArrayInsert:   {"array_insert", 3, arrayInsert},
	IDArrayRemove:   {"array_remove", 2, arrayRemove},
	IDArraySlice:    {"array_slice", 3, arraySlice},
	IDArraySort:     {"array_sort", 1, arraySort},
	IDArrayConcat:   {"array_concat", 2, arrayConcat},
	IDArrayCopy:     {"array_copy", 1, arrayCopy},
	IDArrayClear:    {"array_clear", 1, arrayClear},
	IDArrayIndexOf:  {"array_index_of", 2, arrayIndexOf},
	IDArrayContains: {"array_contains", 2, arrayContains},
	IDArrayReverse:  {"array_reverse", 1, arrayReverse},
	IDArrayFill:     {"array_fill", 2, arrayFill},
	IDMapLen:        {"map_len", 1, mapLen},
	IDMapSet:        {"map_set", 3, mapSet},
	IDMapGet:        {"map_get", 2, mapGet},
	IDMapHasKey:     {"map_has_key", 2, mapHasKey},
	IDMapDelete:     {"map_delete", 2, mapDelete},
	IDMapKeys:       {"map_keys", 1, mapKeys},
	IDMapValues:     {"map_values", 1, mapValues},
	IDStructGet:     {"struct_get", 2, structGet},
	IDStructSet:     {"struct_set", 3, structSet},

	IDTypeOf:   {"typeof", 1, typeOf},
	IDTag:      {"tag", 1, tagOf},
	IDArgv:     {"argv", 1, argvBuiltin},
	IDArgc:     {"argc", 0, argcBuiltin},
	IDGetenv:   {"getenv", 1, getenvBuiltin},
	IDClockMs:  {"clock_ms", 0, clockMsBuiltin},
	IDExit:     {"exit", 1, exitBuiltin},
	IDSleep:    {"sleep", 1, sleepBuiltin},
	IDParseInt: {"parse_int", 1, parseInt},
}
